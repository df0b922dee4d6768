package views

// Drag events of the upload drop zone.
const (
	DragEnter = "dragenter"
	DragOver  = "dragover"
	DragLeave = "dragleave"
	Drop      = "drop"
)

// UploadView is the state of the upload drop zone.
type UploadView struct {
	DragActive bool
}

// Drag applies one drag event.
func (v *UploadView) Drag(event string) error {
	switch event {
	case DragEnter, DragOver:
		v.DragActive = true
	case DragLeave, Drop:
		v.DragActive = false
	default:
		return invalid("unknown drag event %q", event)
	}
	return nil
}
