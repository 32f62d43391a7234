// Package mm keeps notes as plain files inside Git repositories.
//
// Each repository lives under <home>/.mm/repos/<name> and is an ordinary Git
// working tree. Creating a note writes an empty file and stages it, so the next
// commit records it. Folders are single level and never staged until they hold
// a note.
//
// Usage:
//
//	r, err := mm.Open(mm.WithName("work"))
//	if err != nil {
//		return err
//	}
//
//	// Create work/<folder>/todo and stage it
//	path, err := r.AddNote("todo", mm.InFolder("ideas"))
package mm
