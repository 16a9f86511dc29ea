// Package schema declares the built-in resource schemas for the admin
// backend: field kinds, searchable and sortable flags, and the foreign-key
// references between resources.
package schema

import "github.com/fathomline/gridview/pkg/types"

// Built-in resource names.
const (
	ResourceCategories = "categories"
	ResourceAdmins     = "admins"
	ResourceUsers      = "users"
	ResourceOrders     = "orders"
	ResourceProducts   = "products"
	ResourceCarts      = "carts"
	ResourceVariants   = "variants"
	ResourcePosts      = "posts"
)

// ref builds a ReferenceSpec for a foreign-key field.
func ref(sourceField, targetResource, displayField string) *types.ReferenceSpec {
	return &types.ReferenceSpec{
		SourceField:    sourceField,
		TargetResource: targetResource,
		DisplayField:   displayField,
	}
}

// builtins maps resource name to its schema. The id field leads every
// schema; createdAt/updatedAt close it where the backend provides them.
var builtins = map[string]types.Schema{
	ResourceCategories: {
		Resource: ResourceCategories,
		Fields: []types.FieldSpec{
			{Name: "id", Kind: types.FieldString, Sortable: true},
			{Name: "name", Kind: types.FieldString, Searchable: true, Sortable: true},
			{Name: "description", Kind: types.FieldString, Searchable: true},
			{Name: "createdAt", Kind: types.FieldDate, Sortable: true},
			{Name: "updatedAt", Kind: types.FieldDate, Sortable: true},
		},
	},
	ResourceAdmins: {
		Resource: ResourceAdmins,
		Fields: []types.FieldSpec{
			{Name: "id", Kind: types.FieldString, Sortable: true},
			{Name: "name", Kind: types.FieldString, Searchable: true, Sortable: true},
			{Name: "email", Kind: types.FieldString, Searchable: true, Sortable: true},
			{Name: "role", Kind: types.FieldString, Sortable: true},
			{Name: "active", Kind: types.FieldBool, Sortable: true},
			{Name: "createdAt", Kind: types.FieldDate, Sortable: true},
		},
	},
	ResourceUsers: {
		Resource: ResourceUsers,
		Fields: []types.FieldSpec{
			{Name: "id", Kind: types.FieldString, Sortable: true},
			{Name: "name", Kind: types.FieldString, Searchable: true, Sortable: true},
			{Name: "email", Kind: types.FieldString, Searchable: true, Sortable: true},
			{Name: "blocked", Kind: types.FieldBool, Sortable: true},
			{Name: "createdAt", Kind: types.FieldDate, Sortable: true},
		},
	},
	ResourceOrders: {
		Resource: ResourceOrders,
		Fields: []types.FieldSpec{
			{Name: "id", Kind: types.FieldString, Sortable: true},
			{Name: "userId", Kind: types.FieldRef, Searchable: true, Sortable: true,
				Ref: ref("userId", ResourceUsers, "name")},
			{Name: "status", Kind: types.FieldString, Sortable: true},
			{Name: "total", Kind: types.FieldNumber, Sortable: true},
			{Name: "createdAt", Kind: types.FieldDate, Sortable: true},
			{Name: "updatedAt", Kind: types.FieldDate, Sortable: true},
		},
	},
	ResourceProducts: {
		Resource: ResourceProducts,
		Fields: []types.FieldSpec{
			{Name: "id", Kind: types.FieldString, Sortable: true},
			{Name: "name", Kind: types.FieldString, Searchable: true, Sortable: true},
			{Name: "categoryId", Kind: types.FieldRef, Searchable: true, Sortable: true,
				Ref: ref("categoryId", ResourceCategories, "name")},
			{Name: "price", Kind: types.FieldNumber, Sortable: true},
			{Name: "stock", Kind: types.FieldNumber, Sortable: true},
			{Name: "createdAt", Kind: types.FieldDate, Sortable: true},
		},
	},
	ResourceCarts: {
		Resource: ResourceCarts,
		Fields: []types.FieldSpec{
			{Name: "id", Kind: types.FieldString, Sortable: true},
			{Name: "userId", Kind: types.FieldRef, Searchable: true, Sortable: true,
				Ref: ref("userId", ResourceUsers, "name")},
			{Name: "itemCount", Kind: types.FieldNumber, Sortable: true},
			{Name: "subtotal", Kind: types.FieldNumber, Sortable: true},
			{Name: "updatedAt", Kind: types.FieldDate, Sortable: true},
		},
	},
	ResourceVariants: {
		Resource: ResourceVariants,
		Fields: []types.FieldSpec{
			{Name: "id", Kind: types.FieldString, Sortable: true},
			{Name: "productId", Kind: types.FieldRef, Searchable: true, Sortable: true,
				Ref: ref("productId", ResourceProducts, "name")},
			{Name: "sku", Kind: types.FieldString, Searchable: true, Sortable: true},
			{Name: "color", Kind: types.FieldString, Sortable: true},
			{Name: "size", Kind: types.FieldString, Sortable: true},
			{Name: "price", Kind: types.FieldNumber, Sortable: true},
		},
	},
	ResourcePosts: {
		Resource: ResourcePosts,
		Fields: []types.FieldSpec{
			{Name: "id", Kind: types.FieldString, Sortable: true},
			{Name: "title", Kind: types.FieldString, Searchable: true, Sortable: true},
			{Name: "authorId", Kind: types.FieldRef, Searchable: true, Sortable: true,
				Ref: ref("authorId", ResourceAdmins, "name")},
			{Name: "published", Kind: types.FieldBool, Sortable: true},
			{Name: "createdAt", Kind: types.FieldDate, Sortable: true},
			{Name: "updatedAt", Kind: types.FieldDate, Sortable: true},
		},
	},
}

// Lookup returns the schema for the named resource.
// Returns ErrUnknownResource if the resource is not built in.
func Lookup(resource string) (types.Schema, error) {
	s, ok := builtins[resource]
	if !ok {
		return types.Schema{}, types.ErrUnknownResource
	}
	return s, nil
}

// Resources returns the built-in resource names in stable order.
func Resources() []string {
	return []string{
		ResourceCategories,
		ResourceAdmins,
		ResourceUsers,
		ResourceOrders,
		ResourceProducts,
		ResourceCarts,
		ResourceVariants,
		ResourcePosts,
	}
}
