package types

// Synthesized activity records embedded on an employee. Field names match the
// wire format the dashboard consumes.

type ChatLog struct {
	Timestamp string `json:"timestamp"`
	Message   string `json:"message"`
	Sentiment string `json:"sentiment"` // positive | neutral | negative
}

type JiraTicket struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Complexity  string `json:"complexity"` // low | medium | high
	Status      string `json:"status"`     // todo | in_progress | done
	CreatedAt   string `json:"created_at"`
	CompletedAt string `json:"completed_at,omitempty"`
}

type CommitLog struct {
	Hash         string `json:"hash"`
	Message      string `json:"message"`
	Timestamp    string `json:"timestamp"`
	FilesChanged int    `json:"files_changed"`
	LinesAdded   int    `json:"lines_added"`
	LinesDeleted int    `json:"lines_deleted"`
}

// SkillStats is the six-axis skill breakdown, each axis in [0,100].
type SkillStats struct {
	Technical   int `json:"technical"`
	Leadership  int `json:"leadership"`
	Empathy     int `json:"empathy"`
	Velocity    int `json:"velocity"`
	Creativity  int `json:"creativity"`
	Reliability int `json:"reliability"`
}
