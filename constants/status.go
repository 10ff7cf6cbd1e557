package constants

// JobStatus is the canonical status for rows in extract_job.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusQueued    JobStatus = "QUEUED"    // waiting for processing
	JobStatusRunning   JobStatus = "RUNNING"   // in progress
	JobStatusExtracted JobStatus = "EXTRACTED" // pipeline finished with success=true
	JobStatusLowConf   JobStatus = "LOW_CONF"  // pipeline finished below threshold
	JobStatusFailed    JobStatus = "FAILED"    // terminal failure
)

// JobStatuses holds the allowed status values for rows in extract_job.
var JobStatuses = []string{
	string(JobStatusQueued),
	string(JobStatusRunning),
	string(JobStatusExtracted),
	string(JobStatusLowConf),
	string(JobStatusFailed),
}
