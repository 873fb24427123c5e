package report

// Report is the persisted summary of one maze check.
type Report struct {
	SchemaVersion int          `json:"schema_version"`
	RunID         string       `json:"run_id"`
	StartedAt     string       `json:"started_at"`
	FinishedAt    string       `json:"finished_at"`
	Maze          MazeInfo     `json:"maze"`
	Mode          string       `json:"mode"`
	Status        string       `json:"status"`
	Verdict       string       `json:"verdict"`
	FastCheck     bool         `json:"fast_check"`
	Ticks         int          `json:"ticks"`
	PathSteps     int          `json:"path_steps"`
	Path          []PathCell   `json:"path"`
	Waves         []WaveReport `json:"waves"`
	Log           []string     `json:"log"`
	Error         string       `json:"error,omitempty"`
}

type MazeInfo struct {
	File   string `json:"file"`
	Format string `json:"format"`
	Hash   string `json:"sha256"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type PathCell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type WaveReport struct {
	ID            int    `json:"id"`
	Claimed       int    `json:"claimed"`
	Phase         int    `json:"phase"`
	FoundPath     bool   `json:"found_path"`
	Stuck         bool   `json:"stuck"`
	StuckProgress string `json:"stuck_progress"`
}

// SchemaVersion is written into every report.
const SchemaVersion = 1

// Verdict constants
const (
	VerdictReachable   = "REACHABLE"
	VerdictUnreachable = "UNREACHABLE"
	VerdictInvalid     = "INVALID"
	VerdictInterrupted = "INTERRUPTED"
	VerdictError       = "ERROR"
)

// Mode constants
const (
	ModeVisual   = "visual"
	ModeFrames   = "frames"
	ModeHeadless = "headless"
)
