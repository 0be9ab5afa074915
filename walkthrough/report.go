package walkthrough

// Report records what each stage of a walkthrough run actually did.  The CLI prints it as a summary
// and tests assert against it.
type Report struct {
	// Samples holds the names of the local sample files the run operated on, in upload order.
	Samples []string

	// ContainerExisted is true when container creation was tolerated because the container was
	// already there.
	ContainerExisted bool

	// Uploaded holds the names of the blobs that were uploaded successfully.
	Uploaded []string

	// Listed holds the blob names returned by the container listing.
	Listed []string

	// Downloaded holds the local file names written by the download stage.
	Downloaded []string

	// ContainerDeleted is true when the container deletion stage succeeded.
	ContainerDeleted bool

	// Found and Missing partition the expected local file names by whether they exist after the run.
	Found   []string
	Missing []string
}

// Complete reports whether every expected local file was present at verification time.
func (r *Report) Complete() bool {
	return len(r.Missing) == 0
}
