package engine

// FunctionType identifies what kind of output a function produces
type FunctionType string

const (
	FunctionScene      FunctionType = "scene"
	FunctionChaser     FunctionType = "chaser"
	FunctionEFX        FunctionType = "efx"
	FunctionCollection FunctionType = "collection"
	FunctionScript     FunctionType = "script"
	FunctionRGBMatrix  FunctionType = "rgbmatrix"
	FunctionShow       FunctionType = "show"
	FunctionAudio      FunctionType = "audio"
)

// NoFunction is the sentinel id meaning "nothing attached"
const NoFunction uint32 = 0xFFFFFFFF

// Function is a playable entity owned by the document (a scene, a chaser,
// an RGB matrix animation, ...). Only its identity matters here; the
// playback runtime lives elsewhere.
type Function struct {
	ID   uint32       `json:"id"`
	Name string       `json:"name"`
	Type FunctionType `json:"type"`
}
