package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"jansuvidha/models"
	"jansuvidha/upload"
	"jansuvidha/utils"
)

// Multipart field carrying the uploaded files.
const uploadField = "files"

// Largest batch a single request may carry at the full per-file size.
const maxBatchFiles = 20

type UploadListResponse struct {
	Accepted []string              `json:"accepted"`
	MaxSize  string                `json:"max_size"`
	Files    []models.UploadedFile `json:"files"`
}

func (a *API) ListUploads(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, UploadListResponse{
		Accepted: upload.AcceptedExtensions,
		MaxSize:  utils.FormatFileSize(a.maxUpload),
		Files:    a.board.Files(),
	})
}

func (a *API) GetUpload(w http.ResponseWriter, r *http.Request) {
	f, err := a.board.Get(mux.Vars(r)["id"])
	if err != nil {
		a.sendErrorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusOK, f)
}

// CreateUploads accepts a multipart form of files. Parts are streamed and
// discarded; only names and sizes reach the board, which applies the
// per-file size cap. With wait=true the response is held until processing
// ends or the client goes away.
func (a *API) CreateUploads(w http.ResponseWriter, r *http.Request) {
	if a.maxUpload > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, a.maxUpload*maxBatchFiles+1<<20)
	}
	files, err := a.readUploadParts(r)
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			a.sendErrorResponse(w, fmt.Errorf("%w: request exceeds %s", upload.ErrTooLarge, utils.FormatFileSize(tooBig.Limit)))
			return
		}
		a.sendErrorResponse(w, fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}

	tasks, err := a.board.Submit(files)
	if err != nil {
		a.sendErrorResponse(w, err)
		return
	}

	wait := utils.ParseBool(r.URL.Query().Get("wait"))
	if wait {
		for _, t := range tasks {
			select {
			case res := <-t.Done():
				if res.Err != nil {
					a.log.Warn("upload did not complete", zap.String("id", t.ID), zap.Error(res.Err))
				}
			case <-r.Context().Done():
				return
			}
		}
	}
	records := make([]models.UploadedFile, 0, len(tasks))
	for _, t := range tasks {
		if f, err := a.board.Get(t.ID); err == nil {
			records = append(records, f)
		}
	}

	code := http.StatusAccepted
	if wait {
		code = http.StatusOK
	}
	writeJSON(w, code, records)
}

// readUploadParts measures every file part of the request body. Reading
// stops at the first part over the size cap, since the board rejects the
// whole batch anyway.
func (a *API) readUploadParts(r *http.Request) ([]upload.FileInfo, error) {
	mr, err := r.MultipartReader()
	if err != nil {
		return nil, err
	}

	var files []upload.FileInfo
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			return files, nil
		}
		if err != nil {
			return nil, err
		}
		if part.FormName() != uploadField || part.FileName() == "" {
			part.Close()
			continue
		}

		var src io.Reader = part
		if a.maxUpload > 0 {
			src = io.LimitReader(part, a.maxUpload+1)
		}
		n, err := io.Copy(io.Discard, src)
		part.Close()
		if err != nil {
			return nil, err
		}
		files = append(files, upload.FileInfo{Name: part.FileName(), Size: n})
		if a.maxUpload > 0 && n > a.maxUpload {
			return files, nil
		}
	}
}
