package domain

import "go.trai.ch/zerr"

var (
	// ErrPackageNotInstalled is returned when a requested package cannot be confirmed present
	// in the live package database, neither by exact name nor through the tracked set.
	ErrPackageNotInstalled = zerr.New("package is not installed")

	// ErrNoPackageName is returned when an operation requires a package name and none was given.
	ErrNoPackageName = zerr.New("no package name provided")

	// ErrPackageQueryFailed is returned when the package database cannot be queried.
	ErrPackageQueryFailed = zerr.New("failed to query package database")

	// ErrPackageRemovalFailed is returned when the package manager fails to remove a package.
	ErrPackageRemovalFailed = zerr.New("package removal failed")

	// ErrPackageInstallFailed is returned when the package manager fails to install a package.
	ErrPackageInstallFailed = zerr.New("package installation failed")

	// ErrSystemUpgradeFailed is returned when the system upgrade fails.
	ErrSystemUpgradeFailed = zerr.New("failed to upgrade system packages")

	// ErrRepositorySearchFailed is returned when searching the official repositories fails.
	ErrRepositorySearchFailed = zerr.New("failed to search official repositories")

	// ErrTrackingCreateFailed is returned when the tracking file directory cannot be created.
	ErrTrackingCreateFailed = zerr.New("failed to create tracking directory")

	// ErrTrackingReadFailed is returned when the tracking file exists but cannot be read.
	ErrTrackingReadFailed = zerr.New("failed to read tracking file")

	// ErrTrackingParseFailed is returned when the tracking file cannot be parsed.
	ErrTrackingParseFailed = zerr.New("failed to parse tracking file")

	// ErrTrackingMarshalFailed is returned when the tracked set cannot be serialized.
	ErrTrackingMarshalFailed = zerr.New("failed to serialize tracking data")

	// ErrTrackingWriteFailed is returned when the tracking file cannot be written.
	ErrTrackingWriteFailed = zerr.New("failed to write tracking file")

	// ErrMetadataUnavailable is returned when upstream metadata for a package cannot be obtained.
	ErrMetadataUnavailable = zerr.New("upstream metadata unavailable")

	// ErrMetadataRequestFailed is returned when a request to the metadata service fails.
	ErrMetadataRequestFailed = zerr.New("failed to query AUR")

	// ErrMetadataParseFailed is returned when a metadata service response cannot be parsed.
	ErrMetadataParseFailed = zerr.New("failed to parse AUR response")

	// ErrMetadataNotFound is returned when the metadata service does not know the package.
	ErrMetadataNotFound = zerr.New("package not found in AUR")

	// ErrMetadataMismatch is returned when the metadata service answers for a different package.
	ErrMetadataMismatch = zerr.New("AUR returned metadata for a different package")

	// ErrArtifactQueryFailed is returned when a build artifact's metadata cannot be read.
	ErrArtifactQueryFailed = zerr.New("failed to query build artifact")

	// ErrArtifactScanFailed is returned when a build output directory cannot be scanned.
	ErrArtifactScanFailed = zerr.New("failed to scan build output")

	// ErrBuildFailed is returned when building a package from source fails.
	ErrBuildFailed = zerr.New("makepkg -si failed")

	// ErrFetchFailed is returned when the package source cannot be retrieved.
	ErrFetchFailed = zerr.New("failed to clone package source")

	// ErrInvalidSourceURL is returned when a URL is not a recognized AUR git URL.
	ErrInvalidSourceURL = zerr.New("invalid AUR URL")

	// ErrUpdateFailed is returned when one or more packages failed during an update run.
	ErrUpdateFailed = zerr.New("some packages failed to update")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigWriteFailed is returned when the config file cannot be written.
	ErrConfigWriteFailed = zerr.New("failed to write config file")

	// ErrInvalidConfig is returned when a config value is not acceptable.
	ErrInvalidConfig = zerr.New("invalid configuration value")

	// ErrHomeDirUnavailable is returned when the user's home directory cannot be determined.
	ErrHomeDirUnavailable = zerr.New("failed to determine home directory")

	// ErrDownloadDirIsFile is returned when the download directory path points to a regular file.
	ErrDownloadDirIsFile = zerr.New("download path exists but is a file, not a directory")

	// ErrDownloadDirCreateFailed is returned when the download directory cannot be created.
	ErrDownloadDirCreateFailed = zerr.New("failed to create download directory")

	// ErrDownloadDirClearFailed is returned when one or more package folders cannot be removed.
	ErrDownloadDirClearFailed = zerr.New("failed to clear download directory")
)
