package domain

import (
	"strings"
	"time"
)

// RegisteredProject is a local project known to the build system.
type RegisteredProject struct {
	ProjectPath string    `json:"ProjectPath"`
	Timestamp   time.Time `json:"Timestamp"`
}

// RegisteredPackageProject is a project that produced a build of a package.
type RegisteredPackageProject struct {
	RegisteredProject

	PackageID      string `json:"PackageId"`
	PackageVersion string `json:"PackageVersion"`
	PackagePath    string `json:"PackagePath"`
}

// OutputPath is the artifact the project produced, which for packages is the package file.
func (p RegisteredPackageProject) OutputPath() string {
	return p.PackagePath
}

// PackageDirectory returns the directory portion of PackagePath.
// Both '/' and '\' are treated as separators since paths may come from any platform.
func (p RegisteredPackageProject) PackageDirectory() string {
	i := strings.LastIndexAny(p.PackagePath, `/\`)
	switch {
	case i < 0:
		return ""
	case i == 0:
		return p.PackagePath[:1]
	default:
		return p.PackagePath[:i]
	}
}

// PackageRegistration records every local project that has built a package id.
// Projects are ordered most-recently-registered first.
type PackageRegistration struct {
	PackageID string                     `json:"PackageId"`
	Projects  []RegisteredPackageProject `json:"Projects"`
}

// NewPackageRegistration creates an empty registration for packageID.
func NewPackageRegistration(packageID string) *PackageRegistration {
	return &PackageRegistration{
		PackageID: packageID,
		Projects:  []RegisteredPackageProject{},
	}
}

// RegisterProject records a build of the package by projectPath at the given time.
// An existing entry for the same project path (compared case-insensitively) is
// updated and moved to the front; otherwise a new entry is inserted at the front.
func (r *PackageRegistration) RegisterProject(
	packageVersion, packagePath, projectPath string,
	at time.Time,
) RegisteredPackageProject {
	project := RegisteredPackageProject{}
	if i := r.indexOf(projectPath); i >= 0 {
		project = r.Projects[i]
		r.Projects = append(r.Projects[:i], r.Projects[i+1:]...)
	}

	project.PackageID = r.PackageID
	project.PackageVersion = packageVersion
	project.PackagePath = packagePath
	project.ProjectPath = projectPath
	project.Timestamp = at

	r.Projects = append([]RegisteredPackageProject{project}, r.Projects...)
	return project
}

// FindProject returns the entry registered for projectPath.
func (r *PackageRegistration) FindProject(projectPath string) (RegisteredPackageProject, bool) {
	i := r.indexOf(projectPath)
	if i < 0 {
		return RegisteredPackageProject{}, false
	}
	return r.Projects[i], true
}

// LatestProject returns the most recently registered project.
func (r *PackageRegistration) LatestProject() (RegisteredPackageProject, bool) {
	if len(r.Projects) == 0 {
		return RegisteredPackageProject{}, false
	}
	return r.Projects[0], true
}

// MostRecentProject returns the project with the greatest timestamp.
// It can differ from LatestProject when registration order and clock order diverge.
func (r *PackageRegistration) MostRecentProject() (RegisteredPackageProject, bool) {
	if len(r.Projects) == 0 {
		return RegisteredPackageProject{}, false
	}
	best := r.Projects[0]
	for _, p := range r.Projects[1:] {
		if p.Timestamp.After(best.Timestamp) {
			best = p
		}
	}
	return best, true
}

func (r *PackageRegistration) indexOf(projectPath string) int {
	for i, p := range r.Projects {
		if strings.EqualFold(p.ProjectPath, projectPath) {
			return i
		}
	}
	return -1
}
