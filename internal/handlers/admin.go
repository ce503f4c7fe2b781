package handlers

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/IngFreddyRosales/pokemon-frontend/internal/backend"
	"github.com/IngFreddyRosales/pokemon-frontend/internal/middleware"
	"github.com/IngFreddyRosales/pokemon-frontend/internal/screens"
	"github.com/IngFreddyRosales/pokemon-frontend/internal/view"
	"github.com/IngFreddyRosales/pokemon-frontend/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

const maxUploadBytes = 10 << 20

// parseRequestForm accepts both encodings. The admin forms post multipart so
// file fields can travel, but nothing else requires it.
func parseRequestForm(c *drift.Context) error {
	if err := c.Request.ParseMultipartForm(maxUploadBytes); err != nil && err != http.ErrNotMultipart {
		return err
	}
	return nil
}

// adminEntity describes one reference-data screen: how its form looks, how a
// submitted form becomes a record, and which backend endpoints serve it.
// Field option lists may come from the backend, so building the field list can
// itself fail.
type adminEntity struct {
	name     string
	title    string
	basePath string
	config   screens.CRUDConfig

	canCreate bool
	canDelete bool

	fields    func(ctx context.Context, b BackendInterface, token string) ([]view.Field, error)
	endpoints func(b BackendInterface, token string) screens.EntityEndpoints
	parseForm func(c *drift.Context) (screens.Record, error)
}

// AdminHandler serves one reference-data screen. One instance is registered
// per entity.
type AdminHandler struct {
	backend  BackendInterface
	renderer *view.Renderer
	entity   adminEntity
}

func newAdminHandler(b BackendInterface, renderer *view.Renderer, entity adminEntity) *AdminHandler {
	return &AdminHandler{
		backend:  b,
		renderer: renderer,
		entity:   entity,
	}
}

func NewUserAdmin(b BackendInterface, renderer *view.Renderer) *AdminHandler {
	return newAdminHandler(b, renderer, userEntity())
}

func NewTypeAdmin(b BackendInterface, renderer *view.Renderer) *AdminHandler {
	return newAdminHandler(b, renderer, typeEntity())
}

func NewMoveAdmin(b BackendInterface, renderer *view.Renderer) *AdminHandler {
	return newAdminHandler(b, renderer, moveEntity())
}

func NewItemAdmin(b BackendInterface, renderer *view.Renderer) *AdminHandler {
	return newAdminHandler(b, renderer, itemEntity())
}

func NewPokemonAdmin(b BackendInterface, renderer *view.Renderer) *AdminHandler {
	return newAdminHandler(b, renderer, pokemonEntity())
}

func (h *AdminHandler) BasePath() string {
	return h.entity.basePath
}

func (h *AdminHandler) CanCreate() bool { return h.entity.canCreate }
func (h *AdminHandler) CanDelete() bool { return h.entity.canDelete }

func (h *AdminHandler) data(c *drift.Context) view.AdminData {
	return view.AdminData{
		Page:      view.Page{Title: h.entity.title, User: middleware.GetUser(c)},
		Entity:    h.entity.name,
		BasePath:  h.entity.basePath,
		CanCreate: h.entity.canCreate,
		CanDelete: h.entity.canDelete,
	}
}

// load fetches the record list and the field descriptors. Either failure
// blocks the screen.
func (h *AdminHandler) load(c *drift.Context, data *view.AdminData) (*screens.CRUDScreen, bool) {
	token := middleware.GetToken(c)
	screen := screens.NewCRUDScreen(h.entity.config, h.entity.endpoints(h.backend, token))

	if err := screen.Load(c.Request.Context()); err != nil {
		data.Error = errorText(err)
		return nil, false
	}

	fields, err := h.entity.fields(c.Request.Context(), h.backend, token)
	if err != nil {
		data.Error = errorText(err)
		return nil, false
	}

	data.Fields = fields
	data.Records = screen.Records
	return screen, true
}

func (h *AdminHandler) Show(c *drift.Context) {
	data := h.data(c)
	screen, ok := h.load(c, &data)
	if !ok {
		render(c, h.renderer, 200, "admin", data)
		return
	}

	if edit := c.QueryParam("edit"); edit != "" {
		if id, err := strconv.ParseInt(edit, 10, 64); err == nil {
			for _, record := range screen.Records {
				if record.ID() == id {
					data.Editing = record
					break
				}
			}
		}
	}

	render(c, h.renderer, 200, "admin", data)
}

func (h *AdminHandler) Create(c *drift.Context) {
	form, err := h.entity.parseForm(c)
	if err != nil {
		c.BadRequest("invalid form")
		return
	}

	data := h.data(c)
	screen, ok := h.load(c, &data)
	if !ok {
		render(c, h.renderer, 200, "admin", data)
		return
	}

	if err := screen.Create(c.Request.Context(), form); err != nil {
		data.FormError = errorText(err)
		data.Records = screen.Records
		render(c, h.renderer, 200, "admin", data)
		return
	}

	redirect(c, h.entity.basePath)
}

func (h *AdminHandler) Update(c *drift.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		c.BadRequest("invalid id")
		return
	}

	form, err := h.entity.parseForm(c)
	if err != nil {
		c.BadRequest("invalid form")
		return
	}

	data := h.data(c)
	screen, ok := h.load(c, &data)
	if !ok {
		render(c, h.renderer, 200, "admin", data)
		return
	}

	var selected screens.Record
	for _, record := range screen.Records {
		if record.ID() == id {
			selected = record
			break
		}
	}
	if selected == nil {
		c.NotFound("record not found")
		return
	}

	if err := screen.Update(c.Request.Context(), selected, form); err != nil {
		data.FormError = errorText(err)
		form["id"] = id
		data.Editing = form
		render(c, h.renderer, 200, "admin", data)
		return
	}

	redirect(c, h.entity.basePath)
}

func (h *AdminHandler) Delete(c *drift.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		c.BadRequest("invalid id")
		return
	}

	data := h.data(c)
	screen, ok := h.load(c, &data)
	if !ok {
		render(c, h.renderer, 200, "admin", data)
		return
	}

	if err := screen.Delete(c.Request.Context(), id); err != nil {
		data.FormError = errorText(err)
		data.Records = screen.Records
		render(c, h.renderer, 200, "admin", data)
		return
	}

	redirect(c, h.entity.basePath)
}

// -- entity descriptors -----------------------------------------------------

// Accounts register themselves, so the user screen lists and updates but never
// creates or deletes.
func userEntity() adminEntity {
	return adminEntity{
		name:     "user",
		title:    "Users",
		basePath: "/admin",
		config:   screens.CRUDConfig{Entity: "user"},
		fields: func(context.Context, BackendInterface, string) ([]view.Field, error) {
			return []view.Field{
				{Name: "name", Label: "Name", Type: "text"},
				{Name: "email", Label: "Email", Type: "text"},
				{Name: "is_admin", Label: "Administrator", Type: "checkbox"},
			}, nil
		},
		endpoints: func(b BackendInterface, token string) screens.EntityEndpoints {
			return screens.EntityEndpoints{
				List: func(ctx context.Context) ([]screens.Record, error) {
					users, err := b.ListUsers(ctx, token)
					if err != nil {
						return nil, err
					}
					records := make([]screens.Record, 0, len(users))
					for _, u := range users {
						records = append(records, screens.Record{
							"id":       u.ID,
							"name":     u.Name,
							"email":    u.Email,
							"is_admin": u.IsAdmin,
						})
					}
					return records, nil
				},
				Update: func(ctx context.Context, id int64, fields screens.Record) error {
					return b.UpdateUser(ctx, token, id, map[string]any(fields))
				},
			}
		},
		parseForm: func(c *drift.Context) (screens.Record, error) {
			if err := parseRequestForm(c); err != nil {
				return nil, err
			}
			return screens.Record{
				"name":     c.Request.PostFormValue("name"),
				"email":    c.Request.PostFormValue("email"),
				"is_admin": c.Request.PostFormValue("is_admin") == "true",
			}, nil
		},
	}
}

func typeEntity() adminEntity {
	return adminEntity{
		name:      "type",
		title:     "Types",
		basePath:  "/admin/typeManagement",
		config:    screens.CRUDConfig{Entity: "type"},
		canCreate: true,
		canDelete: true,
		fields: func(context.Context, BackendInterface, string) ([]view.Field, error) {
			return []view.Field{
				{Name: "name", Label: "Name", Type: "text"},
			}, nil
		},
		endpoints: func(b BackendInterface, token string) screens.EntityEndpoints {
			return screens.EntityEndpoints{
				List: func(ctx context.Context) ([]screens.Record, error) {
					types, err := b.ListTypes(ctx, token)
					if err != nil {
						return nil, err
					}
					records := make([]screens.Record, 0, len(types))
					for _, t := range types {
						records = append(records, screens.Record{"id": t.ID, "name": t.Name})
					}
					return records, nil
				},
				Create: func(ctx context.Context, form screens.Record) error {
					name, _ := form["name"].(string)
					_, err := b.CreateType(ctx, token, dto.CreateTypeRequest{Name: name})
					return err
				},
				Update: func(ctx context.Context, id int64, fields screens.Record) error {
					return b.UpdateType(ctx, token, id, map[string]any(fields))
				},
				Delete: func(ctx context.Context, id int64) error {
					return b.DeleteType(ctx, token, id)
				},
			}
		},
		parseForm: func(c *drift.Context) (screens.Record, error) {
			if err := parseRequestForm(c); err != nil {
				return nil, err
			}
			return screens.Record{"name": c.Request.PostFormValue("name")}, nil
		},
	}
}

func moveEntity() adminEntity {
	return adminEntity{
		name:      "move",
		title:     "Moves",
		basePath:  "/admin/moveManagement",
		config:    screens.CRUDConfig{Entity: "move"},
		canCreate: true,
		canDelete: true,
		fields: func(ctx context.Context, b BackendInterface, token string) ([]view.Field, error) {
			typeOptions, err := typeOptions(ctx, b, token)
			if err != nil {
				return nil, err
			}
			return []view.Field{
				{Name: "name", Label: "Name", Type: "text"},
				{Name: "typeId", Label: "Type", Type: "select", Options: typeOptions},
				{Name: "category", Label: "Category", Type: "select", Options: []view.Option{
					{Value: "physical", Label: "Physical"},
					{Value: "special", Label: "Special"},
					{Value: "status", Label: "Status"},
				}},
				{Name: "power", Label: "Power", Type: "number"},
				{Name: "description", Label: "Description", Type: "textarea"},
			}, nil
		},
		endpoints: func(b BackendInterface, token string) screens.EntityEndpoints {
			return screens.EntityEndpoints{
				List: func(ctx context.Context) ([]screens.Record, error) {
					moves, err := b.ListMoves(ctx, token)
					if err != nil {
						return nil, err
					}
					records := make([]screens.Record, 0, len(moves))
					for _, m := range moves {
						records = append(records, screens.Record{
							"id":          m.ID,
							"name":        m.Name,
							"typeId":      m.TypeID,
							"category":    string(m.Category),
							"power":       int64(m.Power),
							"description": m.Description,
						})
					}
					return records, nil
				},
				Create: func(ctx context.Context, form screens.Record) error {
					name, _ := form["name"].(string)
					typeID, _ := form["typeId"].(*int64)
					category, _ := form["category"].(string)
					power, _ := form["power"].(int64)
					description, _ := form["description"].(string)
					_, err := b.CreateMove(ctx, token, dto.CreateMoveRequest{
						Name:        name,
						TypeID:      typeID,
						Category:    category,
						Power:       int(power),
						Description: description,
					})
					return err
				},
				Update: func(ctx context.Context, id int64, fields screens.Record) error {
					return b.UpdateMove(ctx, token, id, map[string]any(fields))
				},
				Delete: func(ctx context.Context, id int64) error {
					return b.DeleteMove(ctx, token, id)
				},
			}
		},
		parseForm: func(c *drift.Context) (screens.Record, error) {
			if err := parseRequestForm(c); err != nil {
				return nil, err
			}
			power, _ := strconv.ParseInt(c.Request.PostFormValue("power"), 10, 64)
			return screens.Record{
				"name":        c.Request.PostFormValue("name"),
				"typeId":      optionalFormID(c.Request.PostFormValue("typeId")),
				"category":    c.Request.PostFormValue("category"),
				"power":       power,
				"description": c.Request.PostFormValue("description"),
			}, nil
		},
	}
}

// Items resend the full form on update so a re-uploaded icon travels with it.
func itemEntity() adminEntity {
	return adminEntity{
		name:      "item",
		title:     "Items",
		basePath:  "/admin/itemManagement",
		config:    screens.CRUDConfig{Entity: "item", FullUpdate: true},
		canCreate: true,
		canDelete: true,
		fields: func(context.Context, BackendInterface, string) ([]view.Field, error) {
			return []view.Field{
				{Name: "name", Label: "Name", Type: "text"},
				{Name: "description", Label: "Description", Type: "textarea"},
				{Name: "image", Label: "Icon", Type: "file"},
			}, nil
		},
		endpoints: func(b BackendInterface, token string) screens.EntityEndpoints {
			return screens.EntityEndpoints{
				List: func(ctx context.Context) ([]screens.Record, error) {
					items, err := b.ListItems(ctx, token)
					if err != nil {
						return nil, err
					}
					records := make([]screens.Record, 0, len(items))
					for _, i := range items {
						records = append(records, screens.Record{
							"id":          i.ID,
							"name":        i.Name,
							"description": i.Description,
							"image":       i.Image,
						})
					}
					return records, nil
				},
				Create: func(ctx context.Context, form screens.Record) error {
					_, err := b.CreateItem(ctx, token, itemFormFromRecord(form))
					return err
				},
				Update: func(ctx context.Context, id int64, fields screens.Record) error {
					return b.UpdateItem(ctx, token, id, itemFormFromRecord(fields))
				},
				Delete: func(ctx context.Context, id int64) error {
					return b.DeleteItem(ctx, token, id)
				},
			}
		},
		parseForm: func(c *drift.Context) (screens.Record, error) {
			if err := parseRequestForm(c); err != nil {
				return nil, err
			}
			upload, err := formUpload(c, "image")
			if err != nil {
				return nil, err
			}
			record := screens.Record{
				"name":        c.Request.PostFormValue("name"),
				"description": c.Request.PostFormValue("description"),
			}
			if upload != nil {
				record["upload"] = upload
			}
			return record, nil
		},
	}
}

// Pokémon are full-update for the same reason items are: the sprite upload is
// part of the form.
func pokemonEntity() adminEntity {
	return adminEntity{
		name:      "Pokémon",
		title:     "Pokémon",
		basePath:  "/admin/pokemonManagement",
		config:    screens.CRUDConfig{Entity: "pokemon", FullUpdate: true},
		canCreate: true,
		canDelete: true,
		fields: func(ctx context.Context, b BackendInterface, token string) ([]view.Field, error) {
			types, err := typeOptions(ctx, b, token)
			if err != nil {
				return nil, err
			}
			moves, err := b.ListMoves(ctx, token)
			if err != nil {
				return nil, err
			}
			moveOptions := make([]view.Option, 0, len(moves))
			for _, m := range moves {
				moveOptions = append(moveOptions, view.Option{
					Value: strconv.FormatInt(m.ID, 10),
					Label: m.Name,
				})
			}
			return []view.Field{
				{Name: "name", Label: "Name", Type: "text"},
				{Name: "image", Label: "Sprite", Type: "file"},
				{Name: "type1Id", Label: "Primary type", Type: "select", Options: types},
				{Name: "type2Id", Label: "Secondary type", Type: "select", Options: types},
				{Name: "hp", Label: "HP", Type: "number"},
				{Name: "atk", Label: "Attack", Type: "number"},
				{Name: "def", Label: "Defense", Type: "number"},
				{Name: "spAtk", Label: "Sp. Attack", Type: "number"},
				{Name: "spDef", Label: "Sp. Defense", Type: "number"},
				{Name: "speed", Label: "Speed", Type: "number"},
				{Name: "moves", Label: "Moves", Type: "multiselect", Options: moveOptions},
			}, nil
		},
		endpoints: func(b BackendInterface, token string) screens.EntityEndpoints {
			return screens.EntityEndpoints{
				List: func(ctx context.Context) ([]screens.Record, error) {
					pokemon, err := b.ListPokemon(ctx, token)
					if err != nil {
						return nil, err
					}
					records := make([]screens.Record, 0, len(pokemon))
					for _, p := range pokemon {
						records = append(records, screens.Record{
							"id":      p.ID,
							"name":    p.Name,
							"image":   p.Image,
							"type1Id": p.Type1ID,
							"type2Id": p.Type2ID,
							"hp":      int64(p.HP),
							"atk":     int64(p.Atk),
							"def":     int64(p.Def),
							"spAtk":   int64(p.SpAtk),
							"spDef":   int64(p.SpDef),
							"speed":   int64(p.Speed),
							"moves":   p.MoveIDs,
						})
					}
					return records, nil
				},
				Create: func(ctx context.Context, form screens.Record) error {
					_, err := b.CreatePokemon(ctx, token, pokemonFormFromRecord(form))
					return err
				},
				Update: func(ctx context.Context, id int64, fields screens.Record) error {
					return b.UpdatePokemon(ctx, token, id, pokemonFormFromRecord(fields))
				},
				Delete: func(ctx context.Context, id int64) error {
					return b.DeletePokemon(ctx, token, id)
				},
			}
		},
		parseForm: func(c *drift.Context) (screens.Record, error) {
			if err := parseRequestForm(c); err != nil {
				return nil, err
			}
			upload, err := formUpload(c, "image")
			if err != nil {
				return nil, err
			}

			record := screens.Record{
				"name":    c.Request.PostFormValue("name"),
				"type1Id": optionalFormID(c.Request.PostFormValue("type1Id")),
				"type2Id": optionalFormID(c.Request.PostFormValue("type2Id")),
				"moves":   formIDList(c.Request.PostForm["moves"]),
			}
			for _, stat := range []string{"hp", "atk", "def", "spAtk", "spDef", "speed"} {
				value, _ := strconv.ParseInt(c.Request.PostFormValue(stat), 10, 64)
				record[stat] = value
			}
			if upload != nil {
				record["upload"] = upload
			}
			return record, nil
		},
	}
}

// -- form helpers -----------------------------------------------------------

func typeOptions(ctx context.Context, b BackendInterface, token string) ([]view.Option, error) {
	types, err := b.ListTypes(ctx, token)
	if err != nil {
		return nil, err
	}
	options := make([]view.Option, 0, len(types))
	for _, t := range types {
		options = append(options, view.Option{
			Value: strconv.FormatInt(t.ID, 10),
			Label: t.Name,
		})
	}
	return options, nil
}

// optionalFormID maps an empty select value to nil, never to zero.
func optionalFormID(raw string) *int64 {
	if raw == "" {
		return nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &id
}

func formIDList(raw []string) []int64 {
	ids := make([]int64, 0, len(raw))
	for _, value := range raw {
		id, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// formUpload reads an optional file field; no file selected yields nil.
func formUpload(c *drift.Context, field string) (*backend.FileUpload, error) {
	file, header, err := c.Request.FormFile(field)
	if err != nil {
		return nil, nil
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	return &backend.FileUpload{Filename: header.Filename, Content: content}, nil
}

func itemFormFromRecord(record screens.Record) backend.ItemForm {
	form := backend.ItemForm{}
	form.Name, _ = record["name"].(string)
	form.Description, _ = record["description"].(string)
	form.Image, _ = record["upload"].(*backend.FileUpload)
	return form
}

func pokemonFormFromRecord(record screens.Record) backend.PokemonForm {
	form := backend.PokemonForm{}
	form.Name, _ = record["name"].(string)
	form.Image, _ = record["upload"].(*backend.FileUpload)
	form.Type1ID, _ = record["type1Id"].(*int64)
	form.Type2ID, _ = record["type2Id"].(*int64)
	form.MoveIDs, _ = record["moves"].([]int64)

	stat := func(field string) int {
		value, _ := record[field].(int64)
		return int(value)
	}
	form.HP = stat("hp")
	form.Atk = stat("atk")
	form.Def = stat("def")
	form.SpAtk = stat("spAtk")
	form.SpDef = stat("spDef")
	form.Speed = stat("speed")
	return form
}
