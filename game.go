package main

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/cardwalk/common"
	"github.com/milk9111/cardwalk/ecs"
	"github.com/milk9111/cardwalk/ecs/component"
	"github.com/milk9111/cardwalk/ecs/entity"
	"github.com/milk9111/cardwalk/ecs/system"
	"github.com/milk9111/cardwalk/prefabs"
	"golang.org/x/image/colornames"
)

// npcRing is the distance from the origin at which wanderers spawn.
const npcRing = 4.0

type Options struct {
	Debug   bool
	Profile string
	NPCs    int
	Seed    int64
	Music   bool
	Watch   bool
}

type Game struct {
	world     *ecs.World
	scheduler *ecs.Scheduler
	render    *system.RenderSystem
	scripts   *system.ScriptSystem
	profiles  *entity.Profiles
	watcher   *prefabs.Watcher
	hud       *HUD

	pauseUI *ebitenui.UI
	paused  bool
	quit    bool
	debug   bool

	music     bool
	musicOff  bool
	lastTrack string
}

func NewGame(opts Options) (*Game, error) {
	delta := 1 / float64(ebiten.TPS())
	w := ecs.NewWorld()
	profiles := entity.NewProfiles()

	g := &Game{
		world:    w,
		render:   system.NewRenderSystem(),
		scripts:  system.NewScriptSystem(delta),
		profiles: profiles,
		debug:    opts.Debug,
		music:    opts.Music,
	}
	g.scheduler = ecs.NewScheduler(
		system.NewInputSystem(),
		g.scripts,
		system.NewCharacterSystem(delta),
		system.NewBindingSystem(),
		system.NewCameraSystem(),
		system.NewAudioSystem(),
		system.NewMusicSystem(),
	)

	if _, err := entity.NewCamera(w); err != nil {
		return nil, err
	}
	if _, err := entity.NewPlayer(w, profiles, opts.Profile); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	keepClear := []cp.Vector{{X: 0, Y: 0}}
	for i := 0; i < opts.NPCs; i++ {
		angle := 2*math.Pi*float64(i)/float64(opts.NPCs) + rng.Float64()*0.5
		spawn := common.Vec3{X: math.Cos(angle) * npcRing, Z: math.Sin(angle) * npcRing}
		if _, err := entity.NewWanderer(w, profiles, spawn); err != nil {
			return nil, err
		}
		keepClear = append(keepClear, cp.Vector{X: spawn.X, Y: spawn.Z})
	}

	scenery, err := prefabs.LoadScenerySpec()
	if err != nil {
		return nil, err
	}
	if err := system.SpawnScenery(w, *scenery, system.PlaceScenery(*scenery, rng, keepClear)); err != nil {
		return nil, fmt.Errorf("scenery: %w", err)
	}

	if opts.Music {
		if _, err := entity.NewMusicPlayer(w); err != nil {
			return nil, err
		}
	}

	if opts.Watch {
		watcher, err := prefabs.NewWatcher(prefabs.DefaultWatchDirs()...)
		if err != nil {
			log.Printf("watch: disabled: %v", err)
		} else {
			g.watcher = watcher
		}
	}

	g.hud = NewHUD()
	g.pauseUI = NewPauseUI(g)
	return g, nil
}

func (g *Game) Update() error {
	if g.quit {
		g.Close()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.drainWatcher()
	g.scheduler.Update(g.world)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Darkolivegreen)
	g.render.Draw(g.world, screen)
	g.hud.Draw(screen, g.world, g.scheduler.Ticks(), g.debug)
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name := <-g.watcher.Events:
			g.reload(name)
		case err := <-g.watcher.Errors:
			log.Printf("watch: %v", err)
		default:
			return
		}
	}
}

func (g *Game) reload(path string) {
	if name, ok := prefabs.ProfileNameFromPath(path); ok {
		n, err := entity.ReloadProfile(g.world, g.profiles, name)
		if err != nil {
			log.Printf("reload: %v", err)
			return
		}
		log.Printf("reload: profile %q applied to %d characters", name, n)
		return
	}
	if filepath.Ext(path) == ".tengo" {
		g.scripts.Invalidate(path)
		log.Printf("reload: script %s", filepath.Base(path))
		return
	}
	log.Printf("reload: %s changed, restart to apply", filepath.Base(path))
}

// playerProfile names the local character's profile for the pause menu.
func (g *Game) playerProfile() string {
	ent, ok := ecs.First(g.world, component.PlayerTagComponent.Kind())
	if !ok {
		return ""
	}
	ch, ok := ecs.Get(g.world, ent, component.CharacterComponent.Kind())
	if !ok {
		return ""
	}
	return ch.Profile
}

// toggleMusic stops the music or resumes the track it stopped. Requests are
// applied when the simulation next ticks, so repeated clicks while paused
// only flip the last request.
func (g *Game) toggleMusic() {
	if !g.musicOff {
		if track := system.CurrentMusic(g.world); track != "" {
			g.lastTrack = track
		}
		system.StopMusic(g.world)
		g.musicOff = true
		return
	}
	if g.lastTrack != "" {
		system.RequestMusic(g.world, g.lastTrack)
	}
	g.musicOff = false
}
