package consts

const (
	// ApplicationName is shown in the startup banner and email subjects.
	ApplicationName = "Reyansh School API"

	// ApplicationVersion is the backend version string.
	ApplicationVersion = "1.2.0"
)
