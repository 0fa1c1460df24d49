package consts

// Photo categories form a closed set shared by upload validation and
// gallery filtering. Gallery categories appear on the public photo wall,
// website categories are the fixed sections of the site itself.

var GalleryCategories = []string{
	"classroom",
	"events",
	"facilities",
	"sports",
	"activities",
	"campus",
}

var WebsiteCategories = []string{
	"hero",
	"about",
	"director",
	"academics",
	"facilities-showcase",
}

// GradeLevels are the admission grades offered by the school.
var GradeLevels = []string{
	"Nursery",
	"LKG",
	"UKG",
	"Class 1",
	"Class 2",
	"Class 3",
	"Class 4",
	"Class 5",
	"Class 6",
	"Class 7",
	"Class 8",
}

var photoCategorySet = buildSet(GalleryCategories, WebsiteCategories)
var gradeSet = buildSet(GradeLevels)

func buildSet(lists ...[]string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, list := range lists {
		for _, v := range list {
			set[v] = struct{}{}
		}
	}
	return set
}

// IsValidPhotoCategory reports whether category belongs to the closed set.
func IsValidPhotoCategory(category string) bool {
	_, ok := photoCategorySet[category]
	return ok
}

// IsValidGrade reports whether grade is one of the offered grade levels.
func IsValidGrade(grade string) bool {
	_, ok := gradeSet[grade]
	return ok
}
