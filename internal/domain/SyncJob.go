package domain

import "time"

type SyncJobStatus string

const (
	SyncJobStatusRunning   SyncJobStatus = "RUNNING"
	SyncJobStatusCompleted SyncJobStatus = "COMPLETED"
	SyncJobStatusFailed    SyncJobStatus = "FAILED"
)

// SyncJob registra uma execução de sincronização de uma conta
type SyncJob struct {
	ID            string        `json:"id"`
	AccountID     string        `json:"account_id"`
	Platform      Platform      `json:"platform"`
	StartDate     time.Time     `json:"start_date"`
	EndDate       time.Time     `json:"end_date"`
	Status        SyncJobStatus `json:"status"`
	RecordsSynced int           `json:"records_synced"`
	WarningsCount int           `json:"warnings_count"`
	ErrorMessage  *string       `json:"error_message,omitempty"`
	StartedAt     time.Time     `json:"started_at"`
	FinishedAt    *time.Time    `json:"finished_at,omitempty"`
}

// Finish fecha o job com o status adequado ao erro recebido
func (j *SyncJob) Finish(err error, finishedAt time.Time) {
	j.FinishedAt = &finishedAt
	if err != nil {
		msg := err.Error()
		j.Status = SyncJobStatusFailed
		j.ErrorMessage = &msg
		return
	}
	j.Status = SyncJobStatusCompleted
}

// SyncSummary resume uma execução de sincronização de todas as contas ativas
type SyncSummary struct {
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	Accounts      int    `json:"accounts"`
	Succeeded     int    `json:"succeeded"`
	Failed        int    `json:"failed"`
	RecordsSynced int    `json:"records_synced"`
}

// BackfillResult descreve a sincronização das lacunas de uma conta
type BackfillResult struct {
	AccountID     string     `json:"account_id"`
	GapsFound     int        `json:"gaps_found"`
	GapsSynced    int        `json:"gaps_synced"`
	RecordsSynced int        `json:"records_synced"`
	Jobs          []*SyncJob `json:"jobs"`
}
