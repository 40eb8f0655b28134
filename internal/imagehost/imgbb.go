package imagehost

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
)

const defaultBaseURL = "https://api.imgbb.com"

// ImgBB talks to the imgbb.com API. BaseURL and Client are injectable
// for tests.
type ImgBB struct {
	APIKey  string
	BaseURL string
	Client  *http.Client
}

func NewImgBB(apiKey string) *ImgBB {
	return &ImgBB{
		APIKey:  apiKey,
		BaseURL: defaultBaseURL,
		Client:  http.DefaultClient,
	}
}

type imgbbEnvelope struct {
	Success bool `json:"success"`
	Data    struct {
		URL        string `json:"url"`
		DisplayURL string `json:"display_url"`
		DeleteURL  string `json:"delete_url"`
		Title      string `json:"title"`
		Size       int64  `json:"size"`
		Time       int64  `json:"time"`
		Thumb      struct {
			URL string `json:"url"`
		} `json:"thumb"`
		Medium struct {
			URL string `json:"url"`
		} `json:"medium"`
	} `json:"data"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (h *ImgBB) Upload(ctx context.Context, name string, data []byte) (*Image, error) {
	form := url.Values{}
	form.Set("image", base64.StdEncoding.EncodeToString(data))
	form.Set("key", h.APIKey)
	form.Set("name", name)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		h.BaseURL+"/1/upload", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := h.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("imgbb upload: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("imgbb upload: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("imgbb upload failed: %s - %s", resp.Status, strings.TrimSpace(string(body)))
	}

	var env imgbbEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("imgbb upload: decode response: %w", err)
	}
	if !env.Success || env.Data.URL == "" {
		if env.Error.Message != "" {
			return nil, fmt.Errorf("imgbb upload failed: %s", env.Error.Message)
		}
		return nil, errors.New("imgbb upload failed: invalid response format")
	}

	return &Image{
		URL:        env.Data.URL,
		DisplayURL: env.Data.DisplayURL,
		ThumbURL:   env.Data.Thumb.URL,
		MediumURL:  env.Data.Medium.URL,
		DeleteURL:  env.Data.DeleteURL,
		Title:      env.Data.Title,
		Size:       env.Data.Size,
		Time:       env.Data.Time,
	}, nil
}

func (h *ImgBB) DeleteByURL(ctx context.Context, imageURL string) error {
	hash, err := deleteHashFromURL(imageURL)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete,
		h.BaseURL+"/1/delete/"+hash, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Client-ID "+h.APIKey)

	resp, err := h.Client.Do(req)
	if err != nil {
		return fmt.Errorf("imgbb delete: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("imgbb delete failed: %s", resp.Status)
	}
	return nil
}

// deleteHashFromURL derives the host-side identifier from a hosted image
// URL: final path segment, extension stripped. Coupled to imgbb's URL
// shape (https://i.ibb.co/<hash>/<file> or .../<hash>.<ext>).
func deleteHashFromURL(imageURL string) (string, error) {
	u, err := url.Parse(imageURL)
	if err != nil {
		return "", fmt.Errorf("invalid image URL format: %w", err)
	}
	seg := path.Base(u.Path)
	hash := strings.TrimSuffix(seg, path.Ext(seg))
	if hash == "" || hash == "." || hash == "/" {
		return "", errors.New("invalid image URL format")
	}
	return hash, nil
}
