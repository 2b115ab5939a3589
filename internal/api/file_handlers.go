package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"serwer-pulpitu/internal/vfs"

	"github.com/go-chi/chi/v5"

	_ "serwer-pulpitu/internal/models"
)

type CreateFileRequest struct {
	Name     string  `json:"name" example:"notes.txt"`
	ParentID *string `json:"parent_id" example:"documents"`
	Content  string  `json:"content" example:"hello"`
}

type CreateFolderRequest struct {
	Name     string  `json:"name" example:"Projects"`
	ParentID *string `json:"parent_id" example:"root"`
}

type UpdateContentRequest struct {
	Content string `json:"content" example:"new text"`
}

// UpdateFileRequest renames and/or moves a record. Absent fields are left alone.
type UpdateFileRequest struct {
	Name     *string `json:"name,omitempty" example:"renamed.txt"`
	ParentID *string `json:"parent_id,omitempty" example:"downloads"`
}

type PathResponse struct {
	Path     string `json:"path" example:"/Documents/README.txt"`
	Complete bool   `json:"complete"`
}

func parentOrRoot(d *vfs.Store, parentID *string) string {
	if parentID == nil || *parentID == "" {
		return d.RootID()
	}
	return *parentID
}

// @Summary      List folder contents
// @Description  Lists the children of a folder in creation order. Without parent_id the root record itself is returned.
// @Tags         files
// @Produce      json
// @Security     BearerAuth
// @Param        parent_id  query     string  false  "ID of the parent folder"
// @Success      200        {array}   models.FileRecord
// @Failure      401        {string}  string "Unauthorized"
// @Router       /files [get]
func (s *Server) ListFilesHandler(w http.ResponseWriter, r *http.Request) {
	d := GetDesktopFromContext(r.Context())

	var parentID *string
	if p := r.URL.Query().Get("parent_id"); p != "" {
		parentID = &p
	}

	writeJSON(w, http.StatusOK, d.Files.Children(parentID))
}

// @Summary      Search files
// @Description  Case-insensitive search over record names and file contents.
// @Tags         files
// @Produce      json
// @Security     BearerAuth
// @Param        q    query     string  false  "Search phrase"
// @Success      200  {array}   models.FileRecord
// @Failure      401  {string}  string "Unauthorized"
// @Router       /files/search [get]
func (s *Server) SearchFilesHandler(w http.ResponseWriter, r *http.Request) {
	d := GetDesktopFromContext(r.Context())
	writeJSON(w, http.StatusOK, d.Files.Search(r.URL.Query().Get("q")))
}

// @Summary      Export the file tree
// @Description  Returns every record of the desktop in list order.
// @Tags         files
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   models.FileRecord
// @Failure      401  {string}  string "Unauthorized"
// @Router       /files/export [get]
func (s *Server) ExportFilesHandler(w http.ResponseWriter, r *http.Request) {
	d := GetDesktopFromContext(r.Context())
	writeJSON(w, http.StatusOK, d.Files.Records())
}

// @Summary      Reload the file tree
// @Description  Re-reads the file tree from the storage backend, picking up changes made outside this server.
// @Tags         files
// @Security     BearerAuth
// @Success      204  {null}    nil "No Content"
// @Failure      401  {string}  string "Unauthorized"
// @Failure      500  {string}  string "Internal Server Error"
// @Router       /files/reload [post]
func (s *Server) ReloadFilesHandler(w http.ResponseWriter, r *http.Request) {
	d := GetDesktopFromContext(r.Context())
	if err := d.Files.Reload(r.Context()); err != nil {
		writeError(w, err, "Failed to reload file system")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary      Get a record
// @Tags         files
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Record ID"
// @Success      200  {object}  models.FileRecord
// @Failure      404  {string}  string "Not found"
// @Router       /files/{id} [get]
func (s *Server) GetFileHandler(w http.ResponseWriter, r *http.Request) {
	d := GetDesktopFromContext(r.Context())
	id := chi.URLParam(r, "id")

	rec, ok := d.Files.Get(id)
	if !ok {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// @Summary      Get the path of a record
// @Description  Renders the slash separated path of a record. complete is false when a parent in the chain is missing.
// @Tags         files
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Record ID"
// @Success      200  {object}  PathResponse
// @Failure      404  {string}  string "Not found"
// @Failure      409  {string}  string "Parent chain contains a cycle"
// @Router       /files/{id}/path [get]
func (s *Server) GetFilePathHandler(w http.ResponseWriter, r *http.Request) {
	d := GetDesktopFromContext(r.Context())

	path, err := d.Files.Path(chi.URLParam(r, "id"))
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, PathResponse{Path: path, Complete: true})
	case errors.Is(err, vfs.ErrUnresolvedPath):
		writeJSON(w, http.StatusOK, PathResponse{Path: path, Complete: false})
	default:
		writeError(w, err, "Failed to resolve path")
	}
}

// @Summary      Create a file
// @Tags         files
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      CreateFileRequest  true  "New file"
// @Success      201      {object}  models.FileRecord
// @Failure      400      {string}  string "Invalid name or parent is not a folder"
// @Failure      404      {string}  string "Parent not found"
// @Router       /files/file [post]
func (s *Server) CreateFileHandler(w http.ResponseWriter, r *http.Request) {
	d := GetDesktopFromContext(r.Context())

	var req CreateFileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	rec, err := d.Files.CreateFile(r.Context(), strings.TrimSpace(req.Name), parentOrRoot(d.Files, req.ParentID), req.Content)
	if err != nil {
		writeError(w, err, "Failed to create file")
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

// @Summary      Create a folder
// @Tags         files
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      CreateFolderRequest  true  "New folder"
// @Success      201      {object}  models.FileRecord
// @Failure      400      {string}  string "Invalid name or parent is not a folder"
// @Failure      404      {string}  string "Parent not found"
// @Router       /files/folder [post]
func (s *Server) CreateFolderHandler(w http.ResponseWriter, r *http.Request) {
	d := GetDesktopFromContext(r.Context())

	var req CreateFolderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	rec, err := d.Files.CreateFolder(r.Context(), strings.TrimSpace(req.Name), parentOrRoot(d.Files, req.ParentID))
	if err != nil {
		writeError(w, err, "Failed to create folder")
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

// @Summary      Replace file content
// @Tags         files
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                true  "File ID"
// @Param        request  body      UpdateContentRequest  true  "New content"
// @Success      200      {object}  models.FileRecord
// @Failure      400      {string}  string "Record is a folder"
// @Failure      404      {string}  string "Not found"
// @Router       /files/{id}/content [put]
func (s *Server) UpdateFileContentHandler(w http.ResponseWriter, r *http.Request) {
	d := GetDesktopFromContext(r.Context())
	id := chi.URLParam(r, "id")

	var req UpdateContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := d.Files.UpdateFile(r.Context(), id, req.Content); err != nil {
		writeError(w, err, "Failed to update file")
		return
	}
	s.writeRecord(w, d.Files, id)
}

// @Summary      Rename and/or move a record
// @Tags         files
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string             true  "Record ID"
// @Param        request  body      UpdateFileRequest  true  "Changes"
// @Success      200      {object}  models.FileRecord
// @Failure      400      {string}  string "Invalid name or target is not a folder"
// @Failure      404      {string}  string "Not found"
// @Failure      409      {string}  string "Move would create a cycle or touches the root"
// @Router       /files/{id} [patch]
func (s *Server) UpdateFileHandler(w http.ResponseWriter, r *http.Request) {
	d := GetDesktopFromContext(r.Context())
	id := chi.URLParam(r, "id")

	var req UpdateFileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Name == nil && req.ParentID == nil {
		http.Error(w, "Nothing to update", http.StatusBadRequest)
		return
	}

	if req.Name != nil {
		if err := d.Files.Rename(r.Context(), id, strings.TrimSpace(*req.Name)); err != nil {
			writeError(w, err, "Failed to rename")
			return
		}
	}
	if req.ParentID != nil {
		if err := d.Files.Move(r.Context(), id, *req.ParentID); err != nil {
			writeError(w, err, "Failed to move")
			return
		}
	}
	s.writeRecord(w, d.Files, id)
}

// @Summary      Delete a record
// @Description  Deletes a record together with everything below it.
// @Tags         files
// @Security     BearerAuth
// @Param        id   path      string  true  "Record ID"
// @Success      204  {null}    nil "No Content"
// @Failure      404  {string}  string "Not found"
// @Failure      409  {string}  string "The root cannot be deleted"
// @Router       /files/{id} [delete]
func (s *Server) DeleteFileHandler(w http.ResponseWriter, r *http.Request) {
	d := GetDesktopFromContext(r.Context())

	if err := d.Files.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err, "Failed to delete")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) writeRecord(w http.ResponseWriter, files *vfs.Store, id string) {
	rec, ok := files.Get(id)
	if !ok {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}
