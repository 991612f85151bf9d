package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/pong/ecs"
)

// ComponentInspector shows and edits the components of the selected entity.
// Edits write straight into storage, so the next frame simulates with them.
type ComponentInspector struct{}

func (ci *ComponentInspector) Render(storage *ecs.Storage, selected ecs.EntityId) {
	if !imgui.BeginV("Components", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}
	defer imgui.End()

	if selected == 0 {
		imgui.Text("No entity selected")
		return
	}

	archetype := storage.GetArchetypeById(selected.ArchetypeId())
	if archetype == nil {
		imgui.Text(fmt.Sprintf("Entity %s not found", selected))
		return
	}

	imgui.Text(fmt.Sprintf("Entity: %s", selected))
	imgui.Separator()

	for _, compType := range archetype.Types() {
		component := storage.GetComponent(selected, compType)
		if component == nil {
			continue
		}

		if imgui.TreeNodeStr(shortTypeName(compType.String())) {
			renderValue(compType.Name(), reflect.ValueOf(component).Elem())
			imgui.TreePop()
		}
	}
}

// renderValue draws an editor for val, which must be addressable.
func renderValue(name string, val reflect.Value) {
	id := fmt.Sprintf("##%s%p", name, val.Addr().Interface())

	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v := int32(val.Int())
		imgui.Text(name + ":")
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(id, &v) {
			val.SetInt(int64(v))
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		imgui.Text(fmt.Sprintf("%s: %d", name, val.Uint()))

	case reflect.Float32, reflect.Float64:
		v := float32(val.Float())
		imgui.Text(name + ":")
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputFloat(id, &v) {
			val.SetFloat(float64(v))
		}

	case reflect.Bool:
		v := val.Bool()
		if imgui.Checkbox(name, &v) {
			val.SetBool(v)
		}

	case reflect.Struct:
		for _, field := range fieldsOf(val.Type()) {
			fieldVal := val.Field(field.index)
			if field.pointer {
				if fieldVal.IsNil() {
					imgui.Text(field.name + ": nil")
					continue
				}
				fieldVal = fieldVal.Elem()
			}
			if field.nested {
				if imgui.TreeNodeStr(field.name) {
					renderValue(field.name, fieldVal)
					imgui.TreePop()
				}
				continue
			}
			renderValue(field.name, fieldVal)
		}

	case reflect.Array:
		for i := 0; i < val.Len(); i++ {
			renderValue(fmt.Sprintf("[%d]", i), val.Index(i))
		}

	default:
		imgui.Text(fmt.Sprintf("%s: %v", name, val.Interface()))
	}
}
