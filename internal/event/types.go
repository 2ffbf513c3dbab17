// internal/event/types.go
package event

const (
	DragStarted  EventType = "DragStarted"  // точка захвачена указателем
	DragMoved    EventType = "DragMoved"    // точка сдвинута
	DragEnded    EventType = "DragEnded"    // указатель отпущен или ушёл с поверхности
	ModeToggled  EventType = "ModeToggled"  // кубическая <-> квадратичная
	StyleSaved   EventType = "StyleSaved"   // кривая сохранена как область отсечения
	StyleDeleted EventType = "StyleDeleted" // область отсечения удалена
	EditToggled  EventType = "EditToggled"  // режим редактирования включён/выключен
	FrameDrawn   EventType = "FrameDrawn"   // кадр перерисован
)

// FramePayload данные события FrameDrawn
type FramePayload struct {
	Frame    int
	CodeText string
	Editing  bool
}
