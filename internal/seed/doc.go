// Package seed turns lesson rows into the curriculum seed script.
//
// Build assigns identities and deduplicates providers, libraries and
// standards into a Catalog. Render writes the Catalog as one transaction of
// conflict-tolerant upserts against this schema:
//
//	curriculum_providers(id, code, name)                         conflict (code)
//	curriculum_libraries(id, provider_id, class_code, class_name) conflict (provider_id, class_code)
//	standards(id, code)                                          conflict (code)
//	curriculum_lessons(id, library_id, sequence_index,
//	                   source_lesson_code, title, objective)     conflict (library_id, sequence_index)
//	curriculum_lesson_standards(lesson_id, standard_id)          conflict do nothing
//
// Table names and conflict targets are a contract with the consuming
// database and must not change.
package seed
