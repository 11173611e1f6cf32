package category

import (
	"time"

	"github.com/google/uuid"
)

// Category là một danh mục sản phẩm.
// Hierarchy một cấp: ParentID nil => top-level, non-nil => subcategory.
// IsOccasion đánh dấu các danh mục theo dịp (Wedding, Party, ...) để
// storefront render riêng khỏi navigation chính.
type Category struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Slug         string     `json:"slug"` // UNIQUE, generated từ Name
	Description  *string    `json:"description,omitempty"`
	ImageURL     *string    `json:"imageUrl,omitempty"`
	ParentID     *uuid.UUID `json:"parentId,omitempty"`
	IsOccasion   bool       `json:"isOccasion"`
	DisplayOrder int        `json:"displayOrder"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// CategoryTree là category kèm subcategories, dùng cho navigation menu
type CategoryTree struct {
	Category
	Children []Category `json:"children"`
}

// BuildTree nhóm flat list thành top-level categories với children.
// Input đã sorted theo display_order; thứ tự được giữ nguyên ở cả hai level.
func BuildTree(categories []Category) []CategoryTree {
	childrenOf := make(map[uuid.UUID][]Category)
	var roots []Category

	for _, c := range categories {
		if c.ParentID == nil {
			roots = append(roots, c)
			continue
		}
		childrenOf[*c.ParentID] = append(childrenOf[*c.ParentID], c)
	}

	tree := make([]CategoryTree, 0, len(roots))
	for _, root := range roots {
		tree = append(tree, CategoryTree{
			Category: root,
			Children: childrenOf[root.ID],
		})
	}
	return tree
}
