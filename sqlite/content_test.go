package sqlite_test

import (
	"context"
	"testing"

	"github.com/erayd/readable"
	"github.com/erayd/readable/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAddress = "00112233445566ff"

func testContent() *readable.Content {
	return readable.NewContent([]readable.Run{
		{Format: readable.FormatNone, Text: "Hello "},
		{Format: readable.FormatBold, Text: "<world>"},
		{Format: readable.FormatBreak, Text: "Next “quoted” paragraph."},
	})
}

func TestContentService_CreateContent(t *testing.T) {
	t.Parallel()

	t.Run("stores and finds content", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewContentService(setupTestDB(t))
		ctx := context.Background()

		require.NoError(t, svc.CreateContent(ctx, testAddress, testContent()))

		got, err := svc.FindContent(ctx, testAddress)
		require.NoError(t, err)
		assert.True(t, testContent().Equal(got))
	})

	t.Run("replaces existing content", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewContentService(setupTestDB(t))
		ctx := context.Background()
		replacement := readable.NewContent([]readable.Run{{Text: "replacement"}})

		require.NoError(t, svc.CreateContent(ctx, testAddress, testContent()))
		require.NoError(t, svc.CreateContent(ctx, testAddress, replacement))

		got, err := svc.FindContent(ctx, testAddress)
		require.NoError(t, err)
		assert.True(t, replacement.Equal(got))

		addresses, err := svc.Addresses(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{testAddress}, addresses)
	})

	t.Run("rejects invalid address", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewContentService(setupTestDB(t))

		err := svc.CreateContent(context.Background(), "../etc/passwd", testContent())
		assert.Equal(t, readable.EINVALID, readable.ErrorCode(err))
	})

	t.Run("rejects nil content", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewContentService(setupTestDB(t))

		err := svc.CreateContent(context.Background(), testAddress, nil)
		assert.Equal(t, readable.EINVALID, readable.ErrorCode(err))
	})
}

func TestContentService_FindContent(t *testing.T) {
	t.Parallel()

	t.Run("returns not found for missing address", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewContentService(setupTestDB(t))

		_, err := svc.FindContent(context.Background(), testAddress)
		assert.Equal(t, readable.ENOTFOUND, readable.ErrorCode(err))
	})

	t.Run("rejects invalid address", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewContentService(setupTestDB(t))

		_, err := svc.FindContent(context.Background(), "XYZ")
		assert.Equal(t, readable.EINVALID, readable.ErrorCode(err))
	})
}

func TestContentService_Addresses(t *testing.T) {
	t.Parallel()

	svc := sqlite.NewContentService(setupTestDB(t))
	ctx := context.Background()

	for _, addr := range []string{"000000000000000b", "000000000000000a"} {
		require.NoError(t, svc.CreateContent(ctx, addr, testContent()))
	}

	addresses, err := svc.Addresses(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"000000000000000a", "000000000000000b"}, addresses)
}
