package resource

// Handle is an opaque reference to a resource in a table.
// Handle 0 is reserved and always invalid.
type Handle uint32

const (
	indexBits = 20
	indexMask = 1<<indexBits - 1
	genMask   = 1<<(32-indexBits) - 1
)

func makeHandle(index int, gen uint32) Handle {
	return Handle(gen&genMask)<<indexBits | Handle(index+1)
}

// slot returns the entry index the handle points at, or -1 for handle 0.
func (h Handle) slot() int {
	return int(h&indexMask) - 1
}

func (h Handle) generation() uint32 {
	return uint32(h >> indexBits)
}

// Type IDs of the native objects a GUI context hands out.
const (
	TypeContext uint32 = iota + 1
	TypeIO
	TypeStyle
	TypeDrawData
	TypeDrawList
	TypeDrawListSharedData
	TypeFont
	TypeViewport
	TypeStorage
	TypeTexture
	TypeRenderTexture
	TypeFontAtlas
	TypeHostObject
)

var typeNames = map[uint32]string{
	TypeContext:            "ImGuiContext",
	TypeIO:                 "ImGuiIO",
	TypeStyle:              "ImGuiStyle",
	TypeDrawData:           "ImDrawData",
	TypeDrawList:           "ImDrawList",
	TypeDrawListSharedData: "ImDrawListSharedData",
	TypeFont:               "ImFont",
	TypeViewport:           "ImGuiViewport",
	TypeStorage:            "ImGuiStorage",
	TypeTexture:            "Texture",
	TypeRenderTexture:      "RenderTexture",
	TypeFontAtlas:          "ImFontAtlas",
	TypeHostObject:         "HostObject",
}

// TypeName returns the native type name for a type ID.
func TypeName(typeID uint32) string {
	if n, ok := typeNames[typeID]; ok {
		return n
	}
	return "unknown"
}

// Event types for resource lifecycle notifications.
type EventType uint8

const (
	EventCreated EventType = iota
	EventDropped
)

// Event represents a resource lifecycle event.
type Event struct {
	Value  any
	Handle Handle
	TypeID uint32
	Type   EventType
}

// Observer receives notifications about resource lifecycle events.
type Observer interface {
	OnResourceEvent(Event)
}

// Backend provides the underlying storage mechanism for resources.
type Backend interface {
	// Create stores a value and returns a handle.
	Create(typeID uint32, value any) (Handle, error)

	// Get retrieves a value by handle.
	Get(handle Handle) (any, bool)

	// Drop removes a resource and returns (value, true) if it was live.
	Drop(handle Handle) (any, bool)

	// Close releases all resources held by the backend.
	Close() error
}

// Table manages resources with type information and observer support.
type Table interface {
	// Insert adds a value and returns its handle.
	Insert(typeID uint32, value any) Handle

	// Get retrieves a value by handle.
	Get(handle Handle) (any, bool)

	// GetTyped retrieves a value only if it matches the expected type.
	GetTyped(handle Handle, typeID uint32) (any, bool)

	// Remove drops a resource and returns (value, true) if found.
	Remove(handle Handle) (any, bool)

	// Subscribe adds an observer for lifecycle events.
	Subscribe(Observer)

	// Unsubscribe removes an observer.
	Unsubscribe(Observer)

	// Len returns the number of active resources.
	Len() int

	// Clear drops all resources.
	Clear()

	// Close releases all resources and stops accepting operations.
	Close() error
}

// Dropper is optionally implemented by resource values that need cleanup.
type Dropper interface {
	Drop()
}
