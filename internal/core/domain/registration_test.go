package domain_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/xrepo/internal/core/domain"
	"pgregory.net/rapid"
)

var t0 = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func TestPackageRegistration_RegisterProject(t *testing.T) {
	t.Parallel()

	r := domain.NewPackageRegistration("Acme.Widgets")
	_, ok := r.LatestProject()
	assert.False(t, ok)
	_, ok = r.MostRecentProject()
	assert.False(t, ok)

	first := r.RegisterProject("1.0.0", "/out/Acme.Widgets.1.0.0.nupkg", "/src/widgets/Widgets.csproj", t0)
	assert.Equal(t, "Acme.Widgets", first.PackageID)
	assert.Equal(t, "/out/Acme.Widgets.1.0.0.nupkg", first.OutputPath())
	assert.Equal(t, "/out", first.PackageDirectory())

	r.RegisterProject("1.0.0", "/out2/a.nupkg", "/src/other/Other.csproj", t0.Add(time.Minute))
	require.Len(t, r.Projects, 2)
	assert.Equal(t, "/src/other/Other.csproj", r.Projects[0].ProjectPath)

	// Re-registering the same project (case-insensitively) updates and moves it to the front.
	updated := r.RegisterProject("1.1.0", "/out3/b.nupkg", "/SRC/WIDGETS/Widgets.csproj", t0.Add(2*time.Minute))
	require.Len(t, r.Projects, 2)
	assert.Equal(t, updated, r.Projects[0])
	assert.Equal(t, "1.1.0", updated.PackageVersion)
	assert.Equal(t, "/out3/b.nupkg", updated.PackagePath)
	assert.Equal(t, "/SRC/WIDGETS/Widgets.csproj", updated.ProjectPath)

	found, ok := r.FindProject("/src/widgets/widgets.csproj")
	require.True(t, ok)
	assert.Equal(t, updated, found)
	_, ok = r.FindProject("/nowhere")
	assert.False(t, ok)
}

func TestPackageRegistration_LatestVersusMostRecent(t *testing.T) {
	t.Parallel()

	r := domain.NewPackageRegistration("Acme.Widgets")
	r.RegisterProject("1.0.0", "/a/p.nupkg", "/a/A.csproj", t0.Add(time.Hour))
	r.RegisterProject("1.0.0", "/b/p.nupkg", "/b/B.csproj", t0)

	latest, ok := r.LatestProject()
	require.True(t, ok)
	assert.Equal(t, "/b/B.csproj", latest.ProjectPath)

	recent, ok := r.MostRecentProject()
	require.True(t, ok)
	assert.Equal(t, "/a/A.csproj", recent.ProjectPath)
}

func TestPackageRegistration_MostRecentTieKeepsFirst(t *testing.T) {
	t.Parallel()

	r := domain.NewPackageRegistration("Acme.Widgets")
	r.RegisterProject("1.0.0", "/a/p.nupkg", "/a/A.csproj", t0)
	r.RegisterProject("1.0.0", "/b/p.nupkg", "/b/B.csproj", t0)

	recent, ok := r.MostRecentProject()
	require.True(t, ok)
	assert.Equal(t, "/b/B.csproj", recent.ProjectPath)
}

func TestRegisteredPackageProject_PackageDirectory(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"/out/a.nupkg":         "/out",
		`C:\out\pkg\a.nupkg`:   `C:\out\pkg`,
		"a.nupkg":              "",
		"/a.nupkg":             "/",
		`mixed/dir\file.nupkg`: `mixed/dir`,
	}
	for path, want := range tests {
		p := domain.RegisteredPackageProject{PackagePath: path}
		assert.Equal(t, want, p.PackageDirectory(), path)
	}
}

func TestPackageRegistration_JSON(t *testing.T) {
	t.Parallel()

	r := domain.NewPackageRegistration("Acme.Widgets")
	r.RegisterProject("1.0.0", "/out/a.nupkg", "/src/A.csproj", t0)

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"PackageId": "Acme.Widgets",
		"Projects": [{
			"ProjectPath": "/src/A.csproj",
			"Timestamp": "2024-03-01T12:00:00Z",
			"PackageId": "Acme.Widgets",
			"PackageVersion": "1.0.0",
			"PackagePath": "/out/a.nupkg"
		}]
	}`, string(data))

	var loaded domain.PackageRegistration
	require.NoError(t, json.Unmarshal(data, &loaded))
	assert.Equal(t, *r, loaded)
}

func TestPackageRegistration_Properties(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		r := domain.NewPackageRegistration("Pkg")
		projects := rapid.SampledFrom([]string{"/a/A.csproj", "/A/a.CSPROJ", "/b/B.csproj", "/c/C.csproj"})

		steps := rapid.IntRange(1, 30).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			project := projects.Draw(t, "project")
			at := t0.Add(time.Duration(rapid.IntRange(-100, 100).Draw(t, "offset")) * time.Minute)
			registered := r.RegisterProject("1.0.0", "/out/p.nupkg", project, at)

			if r.Projects[0] != registered {
				t.Fatalf("registered project is not first")
			}
			seen := map[string]bool{}
			for _, p := range r.Projects {
				key := strings.ToLower(p.ProjectPath)
				if seen[key] {
					t.Fatalf("duplicate project %q", p.ProjectPath)
				}
				seen[key] = true
			}

			recent, _ := r.MostRecentProject()
			for _, p := range r.Projects {
				if p.Timestamp.After(recent.Timestamp) {
					t.Fatalf("most recent %v is older than %v", recent.Timestamp, p.Timestamp)
				}
			}
		}
	})
}
