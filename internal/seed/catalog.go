package seed

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/mathclaw/currseed/internal/identity"
	"github.com/mathclaw/currseed/pkg/currseed"
)

type ProviderRecord struct {
	ID   uuid.UUID
	Code string
	Name string
}

type LibraryRecord struct {
	ID           uuid.UUID
	ProviderID   uuid.UUID
	ProviderCode string
	ClassCode    string
	ClassName    string
}

type StandardRecord struct {
	ID   uuid.UUID
	Code string
}

type LessonRecord struct {
	ID        uuid.UUID
	LibraryID uuid.UUID
	currseed.LessonRow
}

type LinkRecord struct {
	LessonID   uuid.UUID
	StandardID uuid.UUID
}

// Catalog holds every identified entity of one run in emission order.
type Catalog struct {
	Providers []ProviderRecord
	Libraries []LibraryRecord
	Standards []StandardRecord
	Lessons   []LessonRecord
	Links     []LinkRecord
}

type libraryKey struct {
	provider string
	class    string
}

// Build identifies providers, libraries, standards and lessons.
//
// Every configured provider is kept even without lessons. Libraries exist
// only for (provider, class) pairs that have lessons and are ordered by
// provider code, then class code. Standards are deduplicated and sorted by
// code. Lessons and links keep row order.
func Build(providers []currseed.Provider, classes map[string]string, rows []currseed.LessonRow, ids identity.Assigner) (*Catalog, error) {
	c := &Catalog{}

	providerIDs := make(map[string]uuid.UUID, len(providers))
	for _, p := range providers {
		id := ids.Provider(p.Code)
		providerIDs[p.Code] = id
		c.Providers = append(c.Providers, ProviderRecord{ID: id, Code: p.Code, Name: p.Name})
	}

	libraries := make(map[libraryKey]uuid.UUID)
	standards := make(map[string]uuid.UUID)

	for _, row := range rows {
		providerID, ok := providerIDs[row.ProviderCode]
		if !ok {
			return nil, fmt.Errorf("lesson %q references unknown provider %s: %w", row.Title, row.ProviderCode, currseed.ErrInvalidConfig)
		}

		key := libraryKey{provider: row.ProviderCode, class: row.ClassCode}
		libraryID, ok := libraries[key]
		if !ok {
			className, known := classes[row.ClassCode]
			if !known {
				return nil, fmt.Errorf("lesson %q references unknown class %s: %w", row.Title, row.ClassCode, currseed.ErrInvalidConfig)
			}
			libraryID = ids.Library(row.ProviderCode, row.ClassCode)
			libraries[key] = libraryID
			c.Libraries = append(c.Libraries, LibraryRecord{
				ID:           libraryID,
				ProviderID:   providerID,
				ProviderCode: row.ProviderCode,
				ClassCode:    row.ClassCode,
				ClassName:    className,
			})
		}

		lessonID := ids.Lesson(row.ProviderCode, row.ClassCode, row.SequenceIndex, row.Title)
		c.Lessons = append(c.Lessons, LessonRecord{ID: lessonID, LibraryID: libraryID, LessonRow: row})

		for _, code := range row.Standards {
			standardID, ok := standards[code]
			if !ok {
				standardID = ids.Standard(code)
				standards[code] = standardID
				c.Standards = append(c.Standards, StandardRecord{ID: standardID, Code: code})
			}
			c.Links = append(c.Links, LinkRecord{LessonID: lessonID, StandardID: standardID})
		}
	}

	sort.Slice(c.Libraries, func(i, j int) bool {
		a, b := c.Libraries[i], c.Libraries[j]
		if a.ProviderCode != b.ProviderCode {
			return a.ProviderCode < b.ProviderCode
		}
		return a.ClassCode < b.ClassCode
	})
	sort.Slice(c.Standards, func(i, j int) bool {
		return c.Standards[i].Code < c.Standards[j].Code
	})

	return c, nil
}
