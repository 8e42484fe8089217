package material

import (
	"go.uber.org/zap"

	"github.com/Faultbox/showcase3d/internal/engine/scene"
	"github.com/Faultbox/showcase3d/internal/logger"
)

// Mutator writes a color into every recognized channel of scene materials.
// Profiles are computed once per material and reused on later calls.
type Mutator struct {
	profiles map[*scene.Material]Profile
	log      *zap.Logger
}

// NewMutator creates a mutator with an empty profile cache.
func NewMutator() *Mutator {
	return &Mutator{
		profiles: make(map[*scene.Material]Profile),
		log:      logger.Named("material"),
	}
}

// Profile returns the cached profile for mat, classifying it on first use.
func (m *Mutator) Profile(mat *scene.Material) Profile {
	if p, ok := m.profiles[mat]; ok {
		return p
	}
	p := Classify(mat)
	m.profiles[mat] = p
	return p
}

// Register profiles every material reachable from root and returns how many
// slots can be recolored. Call it once after the model loads.
func (m *Mutator) Register(root *scene.Node) int {
	colorable := 0
	root.Traverse(func(n *scene.Node) {
		for _, mat := range n.Materials {
			if m.Profile(mat).Colorable() {
				colorable++
			}
		}
	})
	m.log.Debug("materials profiled",
		zap.Int("profiles", len(m.profiles)),
		zap.Int("colorable_slots", colorable),
	)
	return colorable
}

// Apply sets opt on every recognized channel of every mesh slot under root.
// Returns true if at least one channel was written.
func (m *Mutator) Apply(root *scene.Node, opt ColorOption) bool {
	var p pass
	m.walk(root, opt.Value, &p)
	return p.written > 0
}

// Report summarizes a multi-pass recolor.
type Report struct {
	// Changed is true if any pass wrote at least one channel.
	Changed bool
	// Slots counts model slots that had at least one channel written.
	Slots int
	// Materials counts distinct materials written across all passes.
	Materials int
}

// ApplyAll recolors the model subgraph, then the whole scene graph, then
// the asset registry. Materials shared outside the model root or re-parented
// elsewhere are still reached by the later passes.
func (m *Mutator) ApplyAll(model, sceneRoot *scene.Node, registry []*scene.Material, opt ColorOption) Report {
	seen := make(map[*scene.Material]struct{})

	modelPass := pass{seen: seen}
	m.walk(model, opt.Value, &modelPass)

	scenePass := pass{seen: seen}
	m.walk(sceneRoot, opt.Value, &scenePass)

	registryPass := pass{seen: seen}
	for _, mat := range registry {
		registryPass.slot(m, mat, opt.Value)
	}

	r := Report{
		Changed:   modelPass.written+scenePass.written+registryPass.written > 0,
		Slots:     modelPass.slots,
		Materials: len(seen),
	}
	m.log.Debug("color applied",
		zap.String("color", opt.Name),
		zap.Bool("changed", r.Changed),
		zap.Int("model_slots", r.Slots),
		zap.Int("scene_writes", scenePass.written),
		zap.Int("registry_writes", registryPass.written),
		zap.Int("materials", r.Materials),
	)
	return r
}

type pass struct {
	written int
	slots   int
	seen    map[*scene.Material]struct{}
}

func (p *pass) slot(m *Mutator, mat *scene.Material, value uint32) {
	if mat == nil {
		return
	}
	n := m.write(mat, m.Profile(mat), value)
	if n == 0 {
		return
	}
	p.written += n
	p.slots++
	if p.seen != nil {
		p.seen[mat] = struct{}{}
	}
}

func (m *Mutator) walk(root *scene.Node, value uint32, p *pass) {
	if root == nil {
		return
	}
	root.Traverse(func(n *scene.Node) {
		if !n.IsMesh() {
			return
		}
		for _, mat := range n.Materials {
			p.slot(m, mat, value)
		}
	})
}

// write applies value to the channels in profile and marks the material
// dirty. Returns the number of channels written.
func (m *Mutator) write(mat *scene.Material, profile Profile, value uint32) int {
	written := 0
	for ch := ChannelColor; ch <= ChannelUniforms; ch <<= 1 {
		if !profile.Has(ch) {
			continue
		}
		switch ch {
		case ChannelColor:
			written += setChannel(mat.Color, value)
		case ChannelAlbedo:
			written += setChannel(mat.Albedo, value)
		case ChannelBaseColor:
			written += setChannel(mat.BaseColor, value)
		case ChannelDiffuse:
			written += setChannel(mat.Diffuse, value)
		case ChannelTextureTint:
			// A direct color channel already carries the tint.
			if profile.Has(ChannelColor) {
				continue
			}
			if mat.Color == nil {
				mat.Color = scene.NewColor(value)
			} else {
				mat.Color.SetHex(value)
			}
			written++
		case ChannelUniforms:
			for _, key := range profile.Uniforms {
				u := mat.Uniforms[key]
				if u == nil {
					continue
				}
				if hs, ok := u.Value.(HexSetter); ok {
					hs.SetHex(value)
					written++
				}
			}
		}
	}
	if written > 0 {
		mat.MarkDirty()
	}
	return written
}

func setChannel(c *scene.Color, value uint32) int {
	if c == nil {
		return 0
	}
	c.SetHex(value)
	return 1
}
