package domain

import "path/filepath"

const (
	// AppDirName is the name of the default managed directory under the user config dir.
	AppDirName = "xrepo"

	// PinRegistryFileName is the name of the pin registry document within the managed directory.
	PinRegistryFileName = "pin.registry"

	// PackagesDirName is the name of the package registrations directory.
	PackagesDirName = "packages"

	// DocumentExt is the extension used for multi-file store documents.
	DocumentExt = ".json"

	// SettingsFileName is the name of the optional settings file.
	SettingsFileName = "config.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// PinRegistryPath returns the path of the pin registry document under root.
func PinRegistryPath(root string) string {
	return filepath.Join(root, PinRegistryFileName)
}

// PackagesPath returns the directory holding package registrations under root.
func PackagesPath(root string) string {
	return filepath.Join(root, PackagesDirName)
}
