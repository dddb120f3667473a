package ecs

import (
	"testing"

	"github.com/milk9111/cardwalk/ecs/component"
)

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func TestEntityIDsAreReusedAfterDestroy(t *testing.T) {
	cases := []struct {
		name    string
		spawn   int
		destroy []int
		alive   int
	}{
		{"player_only", 1, nil, 1},
		{"npc_despawned", 3, []int{1}, 2},
		{"field_cleared", 4, []int{0, 1, 2, 3}, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, c.spawn)
			for i := range ents {
				ents[i] = CreateEntity(w)
			}
			for _, i := range c.destroy {
				if !DestroyEntity(w, ents[i]) {
					t.Fatalf("destroy %v failed", ents[i])
				}
			}
			if n := len(Entities(w)); n != c.alive {
				t.Fatalf("alive = %d, want %d", n, c.alive)
			}
			if len(c.destroy) == 0 {
				return
			}
			next := CreateEntity(w)
			if next.id() != ents[c.destroy[len(c.destroy)-1]].id() {
				t.Fatalf("expected the last freed slot to be reused, got %v", next)
			}
		})
	}
}

func TestCharacterComponents(t *testing.T) {
	w := NewWorld()
	player := CreateEntity(w)
	npc := CreateEntity(w)

	if err := Add(w, player, component.TransformComponent.Kind(), &component.Transform{X: 1, Z: 2, ScaleX: 1, ScaleY: 1}); err != nil {
		t.Fatalf("add transform: %v", err)
	}
	if err := Add(w, player, component.CharacterComponent.Kind(), &component.Character{Profile: "love"}); err != nil {
		t.Fatalf("add character: %v", err)
	}
	if err := Add(w, npc, component.CharacterComponent.Kind(), &component.Character{Profile: "knight"}); err != nil {
		t.Fatalf("add character: %v", err)
	}

	tr, ok := Get(w, player, component.TransformComponent.Kind())
	if !ok || tr.X != 1 || tr.Z != 2 {
		t.Fatalf("transform = %+v ok=%v", tr, ok)
	}
	tr.Yaw = 3
	if again, _ := Get(w, player, component.TransformComponent.Kind()); again.Yaw != 3 {
		t.Fatalf("Get should return the stored pointer")
	}

	if Has(w, npc, component.TransformComponent.Kind()) {
		t.Fatalf("npc has no transform yet")
	}
	if !Remove(w, npc, component.CharacterComponent.Kind()) {
		t.Fatalf("remove character failed")
	}
	if Remove(w, npc, component.CharacterComponent.Kind()) {
		t.Fatalf("second remove should report false")
	}
	if ch, ok := Get(w, player, component.CharacterComponent.Kind()); !ok || ch.Profile != "love" {
		t.Fatalf("player character lost: %+v", ch)
	}
}

func TestForEachVisitsHolders(t *testing.T) {
	w := NewWorld()
	kind := component.SceneryTagComponent.Kind()

	rock := CreateEntity(w)
	player := CreateEntity(w)
	tree := CreateEntity(w)
	for _, e := range []Entity{rock, tree} {
		if err := Add(w, e, kind, &component.SceneryTag{}); err != nil {
			t.Fatalf("add tag: %v", err)
		}
	}

	seen := map[Entity]bool{}
	ForEach(w, kind, func(e Entity, _ *component.SceneryTag) { seen[e] = true })
	if !seen[rock] || !seen[tree] || seen[player] || len(seen) != 2 {
		t.Fatalf("unexpected scenery set %v", seen)
	}
}

func TestForEach3(t *testing.T) {
	transforms := component.TransformComponent.Kind()
	sprites := component.SpriteComponent.Kind()
	npcs := component.NPCTagComponent.Kind()

	tests := []struct {
		name  string
		setup func(t *testing.T, w *World) []Entity
	}{
		{
			name: "only_full_matches",
			setup: func(t *testing.T, w *World) []Entity {
				drawnNPC := CreateEntity(w)
				hiddenNPC := CreateEntity(w)
				player := CreateEntity(w)
				mustAdd(t, Add(w, drawnNPC, transforms, &component.Transform{}))
				mustAdd(t, Add(w, drawnNPC, sprites, &component.Sprite{}))
				mustAdd(t, Add(w, drawnNPC, npcs, &component.NPCTag{}))
				mustAdd(t, Add(w, hiddenNPC, transforms, &component.Transform{}))
				mustAdd(t, Add(w, hiddenNPC, npcs, &component.NPCTag{}))
				mustAdd(t, Add(w, player, transforms, &component.Transform{}))
				mustAdd(t, Add(w, player, sprites, &component.Sprite{}))
				return []Entity{drawnNPC}
			},
		},
		{
			name: "skips_destroyed",
			setup: func(t *testing.T, w *World) []Entity {
				e := CreateEntity(w)
				mustAdd(t, Add(w, e, transforms, &component.Transform{}))
				mustAdd(t, Add(w, e, sprites, &component.Sprite{}))
				mustAdd(t, Add(w, e, npcs, &component.NPCTag{}))
				DestroyEntity(w, e)
				return nil
			},
		},
		{
			name: "missing_store",
			setup: func(t *testing.T, w *World) []Entity {
				e := CreateEntity(w)
				mustAdd(t, Add(w, e, transforms, &component.Transform{}))
				return nil
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := NewWorld()
			want := tc.setup(t, w)
			var got []Entity
			ForEach3(w, transforms, sprites, npcs, func(e Entity, _ *component.Transform, _ *component.Sprite, _ *component.NPCTag) {
				got = append(got, e)
			})
			if len(got) != len(want) {
				t.Fatalf("got %v, want %v", got, want)
			}
			for i := range want {
				if got[i] != want[i] {
					t.Fatalf("got %v, want %v", got, want)
				}
			}
		})
	}
}

func mustAdd(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("add: %v", err)
	}
}

func TestStaleHandle(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	old := CreateEntity(w)
	if err := Add(w, old, h.Kind(), intPtr(1)); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if !DestroyEntity(w, old) {
		t.Fatalf("destroy failed")
	}
	if DestroyEntity(w, old) {
		t.Fatalf("double destroy should report false")
	}

	reused := CreateEntity(w)
	if reused.id() != old.id() {
		t.Fatalf("expected id reuse, got %v and %v", old, reused)
	}
	if reused == old {
		t.Fatalf("reused handle should carry a new generation")
	}
	if Has(w, reused, h.Kind()) {
		t.Fatalf("destroyed entity's component leaked into the reused id")
	}
	if err := Add(w, old, h.Kind(), intPtr(2)); err != component.ErrEntityNotAlive {
		t.Fatalf("expected ErrEntityNotAlive for stale handle, got %v", err)
	}
}

func TestAddRejects(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)

	var zero component.ComponentKind[int]
	if err := Add(w, e, zero, intPtr(1)); err != component.ErrInvalidComponentKind {
		t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
	}
	if err := Add(w, e, component.NewComponentKind[int](), nil); err != component.ErrNilComponent {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}
}

func TestFirstAndForEach2(t *testing.T) {
	w := NewWorld()
	ka := component.NewComponentKind[int]()
	kb := component.NewComponentKind[string]()

	if _, ok := First(w, ka); ok {
		t.Fatalf("empty world should have no first entity")
	}

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	if err := Add(w, e1, ka, intPtr(1)); err != nil {
		t.Fatal(err)
	}
	if err := Add(w, e2, ka, intPtr(2)); err != nil {
		t.Fatal(err)
	}
	if err := Add(w, e2, kb, stringPtr("two")); err != nil {
		t.Fatal(err)
	}

	if first, ok := First(w, ka); !ok || first != e1 {
		t.Fatalf("expected e1 first, got %v ok=%v", first, ok)
	}

	var got []string
	ForEach2(w, ka, kb, func(e Entity, n *int, s *string) {
		if e != e2 || *n != 2 {
			t.Fatalf("unexpected entity %v with %d", e, *n)
		}
		got = append(got, *s)
	})
	if len(got) != 1 || got[0] != "two" {
		t.Fatalf("unexpected ForEach2 result %v", got)
	}
}

func TestForEachAllowsDestroy(t *testing.T) {
	w := NewWorld()
	h := component.NewComponentKind[int]()
	for i := 0; i < 4; i++ {
		if err := Add(w, CreateEntity(w), h, intPtr(i)); err != nil {
			t.Fatal(err)
		}
	}

	seen := 0
	ForEach(w, h, func(e Entity, _ *int) {
		seen++
		DestroyEntity(w, e)
	})
	if seen != 4 {
		t.Fatalf("expected to visit 4 entities, visited %d", seen)
	}
	if n := len(Entities(w)); n != 0 {
		t.Fatalf("expected all entities destroyed, %d left", n)
	}
}

func TestSchedulerRunsInOrderAndFlushesEvents(t *testing.T) {
	w := NewWorld()
	var order []string
	s := NewScheduler(
		systemFunc(func(w *World) {
			order = append(order, "a")
			w.Events().Push(Event{Type: "ping"})
		}),
		systemFunc(func(w *World) {
			order = append(order, "b")
			if n := len(w.Events().Peek()); n != 1 {
				t.Fatalf("expected 1 queued event, got %d", n)
			}
		}),
	)
	s.Add(nil)
	s.Update(w)

	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("unexpected order %v", order)
	}
	if n := len(w.Events().Peek()); n != 0 {
		t.Fatalf("events should be flushed after the tick, %d left", n)
	}
	if len(s.Systems()) != 2 {
		t.Fatalf("nil system should not be added")
	}
	if s.Ticks() != 1 {
		t.Fatalf("ticks = %d, want 1", s.Ticks())
	}
}

type systemFunc func(w *World)

func (f systemFunc) Update(w *World) { f(w) }
