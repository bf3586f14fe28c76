package seed

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mathclaw/currseed/pkg/currseed"
)

const (
	providerInsert = "insert into public.curriculum_providers (id, code, name) values (%s, %s, %s) " +
		"on conflict (code) do update set name = excluded.name;"

	libraryInsert = "insert into public.curriculum_libraries (id, provider_id, class_code, class_name) values (%s, %s, %s, %s) " +
		"on conflict (provider_id, class_code) do update set class_name = excluded.class_name;"

	standardInsert = "insert into public.standards (id, code) values (%s, %s) " +
		"on conflict (code) do nothing;"

	lessonInsert = "insert into public.curriculum_lessons (id, library_id, sequence_index, source_lesson_code, title, objective) values (%s, %s, %s, %s, %s, %s) " +
		"on conflict (library_id, sequence_index) do update set " +
		"source_lesson_code = excluded.source_lesson_code, title = excluded.title, objective = excluded.objective;"

	linkInsert = "insert into public.curriculum_lesson_standards (lesson_id, standard_id) values (%s, %s) " +
		"on conflict do nothing;"
)

// Render writes the catalog as a single transaction. Blocks appear in
// dependency order: providers, libraries, standards, lessons, links.
// The output depends only on the catalog, so identical input renders
// byte-identical scripts.
func Render(c *Catalog) string {
	var b strings.Builder
	line := func(s string) {
		b.WriteString(s)
		b.WriteByte('\n')
	}

	line(currseed.ScriptHeader)
	line("begin;")
	line("")

	for _, p := range c.Providers {
		line(fmt.Sprintf(providerInsert, Literal(p.ID.String()), Literal(p.Code), Literal(p.Name)))
	}
	line("")

	for _, l := range c.Libraries {
		line(fmt.Sprintf(libraryInsert, Literal(l.ID.String()), Literal(l.ProviderID.String()), Literal(l.ClassCode), Literal(l.ClassName)))
	}
	line("")

	for _, s := range c.Standards {
		line(fmt.Sprintf(standardInsert, Literal(s.ID.String()), Literal(s.Code)))
	}
	line("")

	for _, l := range c.Lessons {
		line(fmt.Sprintf(lessonInsert,
			Literal(l.ID.String()),
			Literal(l.LibraryID.String()),
			strconv.Itoa(l.SequenceIndex),
			OptionalLiteral(l.SourceLessonCode),
			Literal(l.Title),
			Literal(l.Objective),
		))
	}
	line("")

	for _, k := range c.Links {
		line(fmt.Sprintf(linkInsert, Literal(k.LessonID.String()), Literal(k.StandardID.String())))
	}
	line("")

	line("commit;")
	return b.String()
}
