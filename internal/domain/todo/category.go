package todo

import "github.com/jsamuelsen11/go-service-common/internal/domain"

// Category represents the categorization of a Todo item.
type Category struct{ domain.Enum[int] }

var (
	CategoryPersonal = Category{domain.NewEnum("personal", 1)}
	CategoryWork     = Category{domain.NewEnum("work", 2)}
	CategoryOther    = Category{domain.NewEnum("other", 3)}
)

var categories = domain.NewEnumTable[Category, int](CategoryPersonal, CategoryWork, CategoryOther)

// Categories returns the lookup table for Category.
func Categories() *domain.EnumTable[Category, int] { return categories }

// ParseCategory looks a category up by name, ignoring case.
func ParseCategory(name string) (Category, error) {
	return categories.FromName(name)
}
