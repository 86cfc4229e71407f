// Package xxhash derives content addresses from submitted documents.
package xxhash

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/erayd/readable"
)

// Address returns the content address of body extracted with kind below
// container: the hex xxhash64 of the kind name, the container path and the
// hex xxhash64 of body, NUL separated. An empty container is the default
// container, so the same extraction always lands on the same address.
func Address(kind readable.ExtractorKind, container string, body []byte) string {
	container = readable.ExtractOptions{Container: container}.ContainerPath()

	d := xxhash.New()
	_, _ = d.WriteString(kind.String())
	_, _ = d.WriteString("\x00")
	_, _ = d.WriteString(container)
	_, _ = d.WriteString("\x00")
	_, _ = d.WriteString(fmt.Sprintf("%016x", xxhash.Sum64(body)))
	return fmt.Sprintf("%016x", d.Sum64())
}
