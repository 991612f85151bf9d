package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/pong/ecs"
)

type EntityInfo struct {
	ID             ecs.EntityId
	SpawnIndex     int
	ComponentTypes []string
}

// EntityBrowser lists entities in spawn order.
type EntityBrowser struct {
	entities   []EntityInfo
	lastCount  int
	selected   ecs.EntityId
	filterText string
}

func NewEntityBrowser() EntityBrowser {
	return EntityBrowser{lastCount: -1}
}

func (eb *EntityBrowser) Render(storage *ecs.Storage) {
	if !imgui.BeginV("Entities", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	eb.refresh(storage)

	imgui.InputTextWithHint("##search", "Filter by component...", &eb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear") {
		eb.filterText = ""
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("#")
		imgui.TableSetupColumn("Entity")
		imgui.TableSetupColumn("Components")
		imgui.TableHeadersRow()

		for _, entity := range eb.Filtered() {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := eb.selected == entity.ID
			if imgui.SelectableBoolV(fmt.Sprintf("%d", entity.SpawnIndex), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				eb.selected = entity.ID
			}

			imgui.TableNextColumn()
			imgui.Text(entity.ID.String())

			imgui.TableNextColumn()
			imgui.Text(strings.Join(entity.ComponentTypes, ", "))
		}

		imgui.EndTable()
	}

	imgui.End()
}

// refresh rebuilds the listing when entities were spawned since the last frame.
func (eb *EntityBrowser) refresh(storage *ecs.Storage) {
	if storage.Len() == eb.lastCount {
		return
	}

	eb.entities = eb.entities[:0]
	index := 0
	for id := range storage.Entities() {
		var componentTypes []string
		if archetype := storage.GetArchetypeById(id.ArchetypeId()); archetype != nil {
			for _, t := range archetype.Types() {
				componentTypes = append(componentTypes, shortTypeName(t.String()))
			}
		}
		eb.entities = append(eb.entities, EntityInfo{
			ID:             id,
			SpawnIndex:     index,
			ComponentTypes: componentTypes,
		})
		index++
	}
	eb.lastCount = storage.Len()
}

// Filtered returns entities whose component names contain the filter text.
func (eb *EntityBrowser) Filtered() []EntityInfo {
	if eb.filterText == "" {
		return eb.entities
	}

	filterLower := strings.ToLower(eb.filterText)
	filtered := make([]EntityInfo, 0, len(eb.entities))
	for _, entity := range eb.entities {
		if strings.Contains(strings.ToLower(strings.Join(entity.ComponentTypes, " ")), filterLower) {
			filtered = append(filtered, entity)
		}
	}
	return filtered
}

func (eb *EntityBrowser) Selected() ecs.EntityId {
	return eb.selected
}

// shortTypeName drops the package qualifier: "pong.Position" -> "Position".
func shortTypeName(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i+1:]
	}
	return name
}
