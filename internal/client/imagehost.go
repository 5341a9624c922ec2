package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/pkg/errors"

	"github.com/SviatSloboda/MightyPC-sub001/internal/misc"
)

type imageHostResponse struct {
	Data struct {
		URL string `json:"url"`
	} `json:"data"`
	Success bool `json:"success"`
	Status  int  `json:"status"`
}

// UploadImage forwards the file to the external image host and returns the
// hosted URL.
func (c Client) UploadImage(ctx context.Context, filename string, file io.Reader) (string, error) {
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	fw, err := mw.CreateFormFile("image", filename)
	if err != nil {
		return "", errors.Wrapf(err, "UploadImage: error creating multipart file field for: %s", filename)
	}
	if _, err = io.Copy(fw, file); err != nil {
		return "", errors.Wrapf(err, "UploadImage: error copying file content for: %s", filename)
	}
	if err = mw.WriteField("key", c.ImageHostKey); err != nil {
		return "", errors.Wrap(err, "UploadImage: error writing key field")
	}
	if err = mw.Close(); err != nil {
		return "", errors.Wrap(err, "UploadImage: error closing multipart writer")
	}

	req, err := newRequest(http.MethodPost, c.ImageHostURL, body)
	if err != nil {
		return "", errors.Wrapf(err, "UploadImage: error creating HTTP request to: %s", c.ImageHostURL)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	c.Logger.Infof("UploadImage: Sending %s to %s", filename, c.ImageHostURL)
	resp, err := c.Do(req.WithContext(ctx))
	if err != nil {
		return "", errors.Wrapf(err, "UploadImage: error doing request to: %s", c.ImageHostURL)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.Logger.Errorf("UploadImage: error closing response body, err: %v", err)
		}
	}()

	respBody, err := io.ReadAll(http.MaxBytesReader(nil, resp.Body, 300*1024))
	if err != nil {
		return "", errors.Wrapf(err, "UploadImage: error reading image host response body, status: %s", resp.Status)
	}
	ihResp := imageHostResponse{}
	if err = json.Unmarshal(respBody, &ihResp); err != nil {
		return "", errors.Wrapf(err, "UploadImage: error unmarshalling image host response body, status: %s, body:\n%s",
			resp.Status, misc.BytesLimit(respBody, 2000))
	}
	if !ihResp.Success || ihResp.Data.URL == "" {
		return "", errors.Errorf("UploadImage: image host rejected upload, status: %s, body:\n%s",
			resp.Status, misc.BytesLimit(respBody, 2000))
	}
	return ihResp.Data.URL, nil
}
