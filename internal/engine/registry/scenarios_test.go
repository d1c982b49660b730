package registry_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/xrepo/internal/core/domain"
	"go.trai.ch/xrepo/internal/engine/registry"
	"pgregory.net/rapid"
)

func TestScenario_PinAndUnpinAssembly(t *testing.T) {
	t.Parallel()

	r := openPins(t, t.TempDir())

	_, err := r.PinAssembly("Foo.Core")
	require.NoError(t, err)
	assert.True(t, r.IsAssemblyPinned("foo.core"))

	_, err = r.UnpinAssembly("Foo.Core")
	require.NoError(t, err)
	assert.False(t, r.IsAssemblyPinned("foo.core"))
}

func TestScenario_RegisterAndGetPackage(t *testing.T) {
	t.Parallel()

	r := openPackages(t, t.TempDir())

	_, err := r.RegisterPackage(identifier(t, "Acme.Widgets", "1.0.0"), "C:/out/widgets.nupkg", "C:/src/widgets")
	require.NoError(t, err)

	reg, err := r.GetPackage("Acme.Widgets")
	require.NoError(t, err)
	require.NotNil(t, reg)
	latest, ok := reg.LatestProject()
	require.True(t, ok)
	assert.Equal(t, "C:/out/widgets.nupkg", latest.PackagePath)
	assert.Equal(t, "C:/out", latest.PackageDirectory())
}

func TestPinRegistry_UnpinAllProperties(t *testing.T) {
	t.Parallel()

	kinds := rapid.SampledFrom([]domain.PinKind{domain.AssemblyPin, domain.PackagePin, domain.RepoPin})
	names := rapid.StringMatching(`[A-Za-z][A-Za-z0-9.]{0,8}`)

	rapid.Check(t, func(rt *rapid.T) {
		dir := t.TempDir()

		r, err := registry.OpenPinRegistry(dir)
		if err != nil {
			rt.Fatal(err)
		}

		pinned := map[string]domain.Pin{}
		n := rapid.IntRange(0, 20).Draw(rt, "n")
		for i := 0; i < n; i++ {
			kind := kinds.Draw(rt, "kind")
			name := names.Draw(rt, "name")
			key := kind.String() + ":" + strings.ToLower(name)

			_, err := r.Pin(kind, name)
			if _, dup := pinned[key]; dup {
				if err == nil {
					rt.Fatalf("pinning %s twice succeeded", key)
				}
				continue
			}
			if err != nil {
				rt.Fatalf("pin %s: %v", key, err)
			}
			pinned[key] = domain.NewPin(kind, name)
		}

		// Reloading keeps every pin.
		reopened, err := registry.OpenPinRegistry(dir)
		if err != nil {
			rt.Fatal(err)
		}
		for _, p := range pinned {
			if !reopened.IsPinned(p.Kind, p.Name) {
				rt.Fatalf("%s lost on reload", p)
			}
		}

		removed, err := reopened.UnpinAll()
		if err != nil {
			rt.Fatal(err)
		}
		if len(removed) != len(pinned) {
			rt.Fatalf("unpin all returned %d pins, want %d", len(removed), len(pinned))
		}
		for _, p := range removed {
			if pinned[p.Kind.String()+":"+strings.ToLower(p.Name)] != p {
				rt.Fatalf("unexpected pin %s", p)
			}
			if reopened.IsPinned(p.Kind, p.Name) {
				rt.Fatalf("%s still pinned", p)
			}
		}

		order := make([]int, 0, len(removed))
		for _, p := range removed {
			order = append(order, slices.Index(domain.PinKinds, p.Kind))
		}
		if !slices.IsSorted(order) {
			rt.Fatalf("unpin all order is not repos, packages, assemblies: %v", order)
		}
	})
}
