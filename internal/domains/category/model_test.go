package category

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestBuildTree(t *testing.T) {
	womenID := uuid.New()
	menID := uuid.New()

	dressesParent := womenID
	categories := []Category{
		{ID: womenID, Name: "Women", DisplayOrder: 0},
		{ID: menID, Name: "Men", DisplayOrder: 1},
		{ID: uuid.New(), Name: "Dresses", ParentID: &dressesParent, DisplayOrder: 0},
		{ID: uuid.New(), Name: "Tops", ParentID: &dressesParent, DisplayOrder: 1},
	}

	tree := BuildTree(categories)
	require.Len(t, tree, 2)

	require.Equal(t, "Women", tree[0].Name)
	require.Len(t, tree[0].Children, 2)
	require.Equal(t, "Dresses", tree[0].Children[0].Name)
	require.Equal(t, "Tops", tree[0].Children[1].Name)

	require.Equal(t, "Men", tree[1].Name)
	require.Empty(t, tree[1].Children)
}

func TestBuildTree_Empty(t *testing.T) {
	require.Empty(t, BuildTree(nil))
}

func TestBuildTree_OrphanChildDropped(t *testing.T) {
	ghost := uuid.New()
	categories := []Category{
		{ID: uuid.New(), Name: "Orphan", ParentID: &ghost},
	}

	// Child với parent không tồn tại không xuất hiện ở top level
	require.Empty(t, BuildTree(categories))
}
