package entity

import (
	"fmt"
	"log"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/cardwalk/assets"
	"github.com/milk9111/cardwalk/character"
	"github.com/milk9111/cardwalk/common"
	"github.com/milk9111/cardwalk/ecs"
	"github.com/milk9111/cardwalk/ecs/component"
	"github.com/milk9111/cardwalk/prefabs"
)

// BuildOptions tweaks a prefab at spawn time.
type BuildOptions struct {
	Profiles *Profiles
	// Profile replaces the prefab's character profile when set.
	Profile string
	// Spawn replaces the prefab's transform position when set.
	Spawn *common.Vec3
}

type buildContext struct {
	PrefabPath string
	Options    BuildOptions
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag":   addPlayerTag,
	"camera_tag":   addCameraTag,
	"npc_tag":      addNPCTag,
	"transform":    addTransform,
	"character":    addCharacter,
	"sprite":       addSprite,
	"render_layer": addRenderLayer,
	"input":        addInput,
	"camera":       addCamera,
	"script":       addScript,
	"audio":        addAudio,
	"music_player": addMusicPlayer,
}

// Builders that read other components run after them.
var componentBuildOrder = []string{
	"player_tag",
	"camera_tag",
	"npc_tag",
	"transform",
	"character",
	"sprite",
	"render_layer",
	"input",
	"camera",
	"script",
	"audio",
	"music_player",
}

func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	return BuildEntityWith(w, prefabPath, BuildOptions{})
}

func BuildEntityWith(w *ecs.World, prefabPath string, opts BuildOptions) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}
	if opts.Profiles == nil {
		opts.Profiles = NewProfiles()
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath, Options: opts}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	for _, name := range componentBuildOrder {
		raw, ok := remaining[name]
		if !ok {
			continue
		}
		if err := componentRegistry[name](w, e, raw, ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
		delete(remaining, name)
	}

	if len(remaining) > 0 {
		names := make([]string, 0, len(remaining))
		for name := range remaining {
			names = append(names, name)
		}
		sort.Strings(names)
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("build entity: %q: no builder for component %q", prefabPath, names[0])
	}

	return e, nil
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

func addCameraTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.CameraTagComponent.Kind(), &component.CameraTag{})
}

func addNPCTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.NPCTagComponent.Kind(), &component.NPCTag{})
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	t := &component.Transform{X: spec.X, Y: spec.Y, Z: spec.Z, ScaleX: spec.ScaleX, ScaleY: spec.ScaleY}
	if t.ScaleX == 0 {
		t.ScaleX = 1
	}
	if t.ScaleY == 0 {
		t.ScaleY = 1
	}
	if ctx.Options.Spawn != nil {
		t.X, t.Y, t.Z = ctx.Options.Spawn.X, ctx.Options.Spawn.Y, ctx.Options.Spawn.Z
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}

type characterSpec = prefabs.CharacterComponentSpec

func addCharacter(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[characterSpec](raw)
	if err != nil {
		return fmt.Errorf("decode character spec: %w", err)
	}
	name := spec.Profile
	if ctx.Options.Profile != "" {
		name = ctx.Options.Profile
	}
	if name == "" {
		name = character.DefaultProfile().Name
	}

	lp, err := ctx.Options.Profiles.Get(name)
	if err != nil {
		return err
	}

	var spawn common.Vec3
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		spawn = common.Vec3{X: t.X, Y: t.Y, Z: t.Z}
	}
	m, err := character.NewMachine(lp.Profile, spawn)
	if err != nil {
		return err
	}

	if err := ecs.Add(w, e, component.CharacterComponent.Kind(), &component.Character{Profile: name, Machine: m}); err != nil {
		return err
	}
	return ecs.Add(w, e, component.SpriteSheetComponent.Kind(), &component.SpriteSheet{
		Name:   lp.Sheet.Image,
		FrameU: lp.Sheet.FrameU,
		FrameV: lp.Sheet.FrameV,
	})
}

type spriteSpec = prefabs.SpriteComponentSpec

// addSprite uses the image named in the prefab, or else the shared sheet of
// the entity's profile.
func addSprite(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[spriteSpec](raw)
	if err != nil {
		return fmt.Errorf("decode sprite spec: %w", err)
	}

	var img *ebiten.Image
	switch {
	case spec.Image != "":
		img, err = assets.LoadImage(spec.Image)
		if err != nil {
			return fmt.Errorf("load sprite image %q: %w", spec.Image, err)
		}
	default:
		sheet, ok := ecs.Get(w, e, component.SpriteSheetComponent.Kind())
		if !ok {
			return fmt.Errorf("sprite without image needs a character profile sheet")
		}
		img = assets.Sheet(sheet.Name, gridCells(sheet.FrameU), gridCells(sheet.FrameV))
	}

	return ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
		Image:      img,
		UseSource:  spec.UseSource,
		OriginX:    spec.OriginX,
		OriginY:    spec.OriginY,
		FacingLeft: spec.FacingLeft,
	})
}

func gridCells(frame float64) int {
	if frame <= 0 || frame > 1 {
		return 1
	}
	return max(int(math.Round(1/frame)), 1)
}

type renderLayerSpec = prefabs.RenderLayerComponentSpec

func addRenderLayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[renderLayerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode render layer spec: %w", err)
	}
	return ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.Index})
}

type cameraSpec = prefabs.CameraComponentSpec

func addCamera(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[cameraSpec](raw)
	if err != nil {
		return fmt.Errorf("decode camera spec: %w", err)
	}
	if spec.Zoom <= 0 {
		spec.Zoom = 1
	}
	return ecs.Add(w, e, component.CameraComponent.Kind(), &component.Camera{
		Zoom:       spec.Zoom,
		Smoothness: spec.Smoothness,
		Scale:      spec.Scale,
	})
}

type scriptSpec = prefabs.ScriptComponentSpec

func addScript(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[scriptSpec](raw)
	if err != nil {
		return fmt.Errorf("decode script spec: %w", err)
	}
	if spec.Path == "" {
		return fmt.Errorf("script path is empty")
	}
	if _, err := prefabs.LoadScript(spec.Path); err != nil {
		return fmt.Errorf("load script %q: %w", spec.Path, err)
	}
	if !ecs.Has(w, e, component.InputComponent.Kind()) {
		if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{Intent: character.Intent{Action: character.ActionNone}}); err != nil {
			return err
		}
	}
	return ecs.Add(w, e, component.ScriptComponent.Kind(), &component.Script{Path: spec.Path})
}

func logBuild(ctx *buildContext, format string, args ...any) {
	log.Printf("build entity: %q: "+format, append([]any{ctx.PrefabPath}, args...)...)
}
