package lifecycle

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"

	"github.com/Nezar-Gazer-ENG/Kamashka-Backend/internal/model"
)

var (
	reNonAlnum = regexp.MustCompile(`[^a-z0-9]+`)
	reHyphen   = regexp.MustCompile(`-+`)
)

// maxSuffixScan bounds the unique-suffix search before falling back to a
// time based suffix, so a pathological table state cannot loop forever.
const maxSuffixScan = 100

// Slugify turns free text into a [a-z0-9-] slug: strip diacritics, replace
// everything else with "-", compress and trim hyphens.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	// Strip diacritics (é -> e)
	var buf []rune
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		buf = append(buf, r)
	}
	s = string(buf)

	s = reNonAlnum.ReplaceAllString(s, "-")
	s = reHyphen.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	if s == "" {
		s = "posting"
	}
	return s
}

// AssignSlugIfAbsent computes a unique slug from the posting title when the
// posting has none yet. A slug that is already set is never recomputed.
// Collisions get resolved with the first unused "-1", "-2", ... suffix.
func AssignSlugIfAbsent(db *gorm.DB, posting *model.JobPosting) error {
	if posting.Slug != "" {
		return nil
	}

	base := Slugify(posting.Title)
	slug := base
	for n := 1; n <= maxSuffixScan; n++ {
		var count int64
		q := db.Model(&model.JobPosting{}).Where("slug = ?", slug)
		if posting.ID != 0 {
			q = q.Where("id <> ?", posting.ID)
		}
		if err := q.Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			posting.Slug = slug
			return nil
		}
		slug = fmt.Sprintf("%s-%d", base, n)
	}

	// Scan exhausted, use a time based suffix instead of failing the create.
	posting.Slug = fmt.Sprintf("%s-%x", base, time.Now().UnixNano()&0xffff)
	return nil
}
