package backend

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/IngFreddyRosales/pokemon-frontend/internal/models"
)

// FileUpload is an image read from a submitted form, forwarded verbatim.
type FileUpload struct {
	Filename string
	Content  []byte
}

// ItemForm is the full item form. Item updates always resend every field so a
// re-uploaded image travels with them; there is no diffing for items.
type ItemForm struct {
	Name        string
	Description string
	Image       *FileUpload
}

func (c *Client) ListItems(ctx context.Context, token string) ([]models.Item, error) {
	var items []models.Item
	if err := c.doJSON(ctx, http.MethodGet, "item/", token, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) CreateItem(ctx context.Context, token string, form ItemForm) (*models.Item, error) {
	var created models.Item
	err := c.doMultipart(ctx, http.MethodPost, "item/createItem", token, form.fill, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateItem(ctx context.Context, token string, itemID int64, form ItemForm) error {
	return c.doMultipart(ctx, http.MethodPut, fmt.Sprintf("item/updateItem/%d", itemID), token, form.fill, nil)
}

func (c *Client) DeleteItem(ctx context.Context, token string, itemID int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("item/deleteItem/%d", itemID), token, nil, nil)
}

func (f ItemForm) fill(w *multipart.Writer) error {
	if err := w.WriteField("name", f.Name); err != nil {
		return err
	}
	if err := w.WriteField("description", f.Description); err != nil {
		return err
	}
	return writeUpload(w, "image", f.Image)
}

func writeUpload(w *multipart.Writer, field string, upload *FileUpload) error {
	if upload == nil {
		return nil
	}
	part, err := w.CreateFormFile(field, upload.Filename)
	if err != nil {
		return err
	}
	_, err = part.Write(upload.Content)
	return err
}
