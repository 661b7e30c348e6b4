package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/goliatone/go-gridfield/internal/store"
	"github.com/goliatone/go-gridfield/pkg/declaration"
	"github.com/goliatone/go-gridfield/pkg/fieldtype"
)

type fieldView struct {
	ID      string `json:"id"`
	InputID string `json:"input_id"`
	Label   string `json:"label"`
	HTML    string `json:"html"`
}

type itemView struct {
	ID       string `json:"id"`
	Template string `json:"template"`
	Title    string `json:"title"`
}

func newItemView(item store.Item) itemView {
	return itemView{ID: item.ID, Template: item.Template, Title: item.Title}
}

// inputPrefix namespaces the form inputs of the field at position idx so
// two fields never share input names.
func inputPrefix(idx int) string {
	return fmt.Sprintf("f%d_", idx)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) error {
	items, err := s.store.Items(r.Context())
	if err != nil {
		return err
	}
	views := make([]itemView, 0, len(items))
	for _, item := range items {
		views = append(views, newItemView(item))
	}
	return s.renderPage(w, "Content", &fieldtype.Head{}, "index", map[string]any{
		"items":     views,
		"templates": s.decls.Names(),
	})
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) error {
	if err := r.ParseForm(); err != nil {
		return withStatus(http.StatusBadRequest, err)
	}
	name := strings.TrimSpace(r.PostForm.Get("template"))
	if _, ok := s.decls.Template(name); !ok {
		return withStatus(http.StatusBadRequest, fmt.Errorf("unknown template %q", name))
	}

	item, err := s.store.CreateItem(r.Context(), name, r.PostForm.Get("title"))
	if err != nil {
		return err
	}
	s.logger.Info("server: item created", "id", item.ID, "template", item.Template)
	http.Redirect(w, r, "/admin/items/"+item.ID, http.StatusSeeOther)
	return nil
}

func (s *Server) handleEdit(w http.ResponseWriter, r *http.Request) error {
	item, tpl, err := s.loadItem(r)
	if err != nil {
		return err
	}
	stored, err := s.store.Fields(r.Context(), item.ID)
	if err != nil {
		return err
	}

	details := make(map[string]any, len(stored))
	for id, value := range stored {
		details[id] = value.Raw
	}

	head := &fieldtype.Head{}
	session := fieldtype.NewSession(head)
	fields := make([]fieldView, 0, len(tpl.Fields))
	for idx, field := range tpl.Fields {
		ft, err := s.registry.Get(field.Type)
		if err != nil {
			return err
		}
		inputID := inputPrefix(idx) + field.ID
		fields = append(fields, fieldView{
			ID:      field.ID,
			InputID: inputID,
			Label:   field.Label,
			HTML:    ft.RenderInputs(session, field.Tag().With("input_id", inputID), details),
		})
	}

	return s.renderPage(w, "Edit "+item.Title, head, "edit", map[string]any{
		"item":   newItemView(item),
		"fields": fields,
	})
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) error {
	item, tpl, err := s.loadItem(r)
	if err != nil {
		return err
	}
	if err := r.ParseForm(); err != nil {
		return withStatus(http.StatusBadRequest, err)
	}
	submitted := fieldtype.FromForm(r.PostForm)

	values := make([]store.FieldValue, 0, len(tpl.Fields))
	for idx, field := range tpl.Fields {
		ft, err := s.registry.Get(field.Type)
		if err != nil {
			return err
		}
		raw := ft.Raw(field.Tag(), submitted.Scoped(inputPrefix(idx)))
		payload, err := json.Marshal(raw)
		if err != nil {
			return fmt.Errorf("server: encode field %q: %w", field.ID, err)
		}
		values = append(values, store.FieldValue{
			FieldID:    field.ID,
			Raw:        payload,
			SearchText: ft.SearchText(raw),
		})
	}

	if err := s.store.SaveFields(r.Context(), item.ID, values); err != nil {
		return err
	}
	s.logger.Info("server: item saved", "id", item.ID, "fields", len(values))
	http.Redirect(w, r, "/admin/items/"+item.ID, http.StatusSeeOther)
	return nil
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) error {
	item, tpl, err := s.loadItem(r)
	if err != nil {
		return err
	}
	stored, err := s.store.Fields(r.Context(), item.ID)
	if err != nil {
		return err
	}

	fields := make([]fieldView, 0, len(tpl.Fields))
	for _, field := range tpl.Fields {
		value, ok := stored[field.ID]
		if !ok {
			continue
		}
		ft, err := s.registry.Get(field.Type)
		if err != nil {
			return err
		}
		fields = append(fields, fieldView{
			ID:    field.ID,
			Label: field.Label,
			HTML:  ft.Processed(field.Tag(), value.Raw),
		})
	}

	return s.renderPage(w, item.Title, &fieldtype.Head{}, "item", map[string]any{
		"item":   newItemView(item),
		"fields": fields,
	})
}

func (s *Server) loadItem(r *http.Request) (store.Item, declaration.Template, error) {
	item, err := s.store.Item(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return store.Item{}, declaration.Template{}, err
	}
	tpl, ok := s.decls.Template(item.Template)
	if !ok {
		return store.Item{}, declaration.Template{}, fmt.Errorf("server: item %s uses undeclared template %q", item.ID, item.Template)
	}
	return item, tpl, nil
}

// renderPage renders body into the layout with the session head content.
func (s *Server) renderPage(w http.ResponseWriter, title string, head *fieldtype.Head, body string, data map[string]any) error {
	content, err := s.pages.RenderTemplate(body, data)
	if err != nil {
		return fmt.Errorf("server: render %s: %w", body, err)
	}
	page, err := s.pages.RenderTemplate("layout", map[string]any{
		"title": title,
		"head":  head.String(),
		"body":  content,
	})
	if err != nil {
		return fmt.Errorf("server: render layout: %w", err)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err = io.WriteString(w, page)
	return err
}
