// Package filesystem abstracts the file access of the seed pipeline so the
// reader and writer can run against the OS or an in-memory tree.
//
// OSFileSystem writes the generated script atomically: it is staged in a
// temporary file next to the destination and renamed into place, so a failed
// run never leaves a truncated seed behind.
//
// MemoryFileSystem backs unit tests:
//
//	mfs := filesystem.NewMemoryFileSystem("/project")
//	mfs.AddFile("im.csv", "A1 Lesson,A1 Objective,A1 Standards\n...")
//	content, err := mfs.ReadFile("/project/im.csv")
package filesystem
