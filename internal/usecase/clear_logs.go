package usecase

// ClearLogs empties the in-memory log
type ClearLogs struct {
	logs LogStore
}

// NewClearLogs creates a new ClearLogs use case
func NewClearLogs(logs LogStore) *ClearLogs {
	return &ClearLogs{logs: logs}
}

// Run clears the log and returns how many entries were dropped
func (uc *ClearLogs) Run() int {
	n := len(uc.logs.Entries())
	uc.logs.Clear()
	return n
}
