// Package registry holds the fixed household vocabularies: expense
// categories, funding pockets and payer roles, each with its display icon.
package registry

// Entry is a registry value with its icon.
type Entry struct {
	Name string `json:"name" example:"Groceries"` // Name of the category or pocket
	Icon string `json:"icon" example:"🛒"`         // Emoji used when displaying the value
}

const (
	// FallbackIcon is displayed for categories that are not in the registry.
	FallbackIcon = "📦"

	// DefaultAvatar is used for users without an avatar.
	DefaultAvatar = "👤"
)

// Household roles used for PaidBy and for authorization.
const (
	RoleHusband = "Husband"
	RoleWife    = "Wife"
	RoleSelf    = "Self"
)

// Categories are the valid transaction types in display order.
var categories = []Entry{
	{"Eat", "🍽️"},
	{"Snack", "🍿"},
	{"Groceries", "🛒"},
	{"Laundry", "🧺"},
	{"Bensin", "⛽"},
	{"Flazz", "💳"},
	{"Home Appliance", "🏠"},
	{"Jumat Berkah", "🤲"},
	{"Uang Sampah", "🗑️"},
	{"Uang Keamanan", "👮"},
	{"Medicine", "💊"},
	{"Others", "📦"},
}

// Pockets are the valid funding sources in display order.
var pockets = []Entry{
	{"Kwintals", "💰"},
	{"Groceries", "🥦"},
	{"Weekday Transport", "🚌"},
	{"Weekend Transport", "🚗"},
	{"Investasi", "📈"},
	{"Dana Darurat", "🆘"},
	{"IPL", "🏘️"},
}

var roles = []string{RoleHusband, RoleWife, RoleSelf}

// Categories returns a copy of all categories in display order.
func Categories() []Entry {
	return append([]Entry(nil), categories...)
}

// Pockets returns a copy of all pockets in display order.
func Pockets() []Entry {
	return append([]Entry(nil), pockets...)
}

// Roles returns all household roles.
func Roles() []string {
	return append([]string(nil), roles...)
}

// IsCategory reports whether name is a registered category.
func IsCategory(name string) bool {
	_, ok := lookup(categories, name)
	return ok
}

// IsPocket reports whether name is a registered pocket.
func IsPocket(name string) bool {
	_, ok := lookup(pockets, name)
	return ok
}

// IsRole reports whether name is a household role.
func IsRole(name string) bool {
	for _, r := range roles {
		if r == name {
			return true
		}
	}
	return false
}

// CategoryIcon returns the icon for a category, FallbackIcon if it is unknown.
func CategoryIcon(name string) string {
	if e, ok := lookup(categories, name); ok {
		return e.Icon
	}
	return FallbackIcon
}

// PocketIcon returns the icon for a pocket, FallbackIcon if it is unknown.
func PocketIcon(name string) string {
	if e, ok := lookup(pockets, name); ok {
		return e.Icon
	}
	return FallbackIcon
}

func lookup(entries []Entry, name string) (Entry, bool) {
	for _, e := range entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}
