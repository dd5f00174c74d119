package placeholder

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Adda-Baaj/placeholder-client/internal/domain"
	"github.com/Adda-Baaj/placeholder-client/pkg/publishers"
)

// SaveResult describes the comments file written by SaveLastPostComments.
type SaveResult struct {
	UserID   string
	PostID   int
	Path     string
	Bytes    int
	Comments int
}

// postRef is the part of a post needed to pick the last one.
type postRef struct {
	ID *int `json:"id"`
}

// CommentsFileName is the file name used for a user's post comments.
func CommentsFileName(userID string, postID int) string {
	return fmt.Sprintf("user-%s-post-%d-comments.json", userID, postID)
}

// SaveLastPostComments fetches the comments of the user's last post and writes
// them verbatim to the output directory, replacing any earlier file.
func (c *Client) SaveLastPostComments(ctx context.Context, userID string) (SaveResult, error) {
	userID = strings.TrimSpace(userID)
	if strings.ContainsAny(userID, `/\`) || userID == "." || userID == ".." {
		return SaveResult{}, fmt.Errorf("user id %q is not usable in a file name", userID)
	}
	postsURL, err := c.userURL(userID, "posts")
	if err != nil {
		return SaveResult{}, err
	}
	postsJSON, err := c.body(ctx, http.MethodGet, postsURL, nil)
	if err != nil {
		return SaveResult{}, fmt.Errorf("fetch posts: %w", err)
	}

	postID, err := c.lastPostID([]byte(postsJSON))
	if err != nil {
		return SaveResult{}, err
	}

	commentsJSON, err := c.body(ctx, http.MethodGet, c.commentsURL(postID), nil)
	if err != nil {
		return SaveResult{}, fmt.Errorf("fetch comments: %w", err)
	}

	path := filepath.Join(c.outputDir, CommentsFileName(userID, postID))
	if err := os.WriteFile(path, []byte(commentsJSON), 0o644); err != nil {
		return SaveResult{}, &WriteError{Path: path, Err: err}
	}

	res := SaveResult{
		UserID:   userID,
		PostID:   postID,
		Path:     path,
		Bytes:    len(commentsJSON),
		Comments: countElements(commentsJSON),
	}
	c.log.InfoObj("comments saved", "export", map[string]any{
		"user_id":  res.UserID,
		"post_id":  res.PostID,
		"path":     res.Path,
		"comments": res.Comments,
	})
	c.afterExport(ctx, res)
	return res, nil
}

// lastPostID picks the post id according to the configured strategy.
func (c *Client) lastPostID(raw []byte) (int, error) {
	var posts []postRef
	if err := json.Unmarshal(raw, &posts); err != nil {
		return 0, &ParseError{What: "posts", Err: err}
	}
	if len(posts) == 0 {
		return 0, ErrNoPosts
	}
	for i, p := range posts {
		if p.ID == nil {
			return 0, &ParseError{What: "posts", Err: fmt.Errorf("post[%d] has no id", i)}
		}
	}

	if c.strategy == StrategyLastElement {
		return *posts[len(posts)-1].ID, nil
	}
	maxID := *posts[0].ID
	for _, p := range posts[1:] {
		if *p.ID > maxID {
			maxID = *p.ID
		}
	}
	return maxID, nil
}

// countElements reports how many items a JSON array holds. The comments body is
// written as-is, so anything else counts as zero.
func countElements(raw string) int {
	var items []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return 0
	}
	return len(items)
}

// afterExport journals and announces a written file. Failures are logged only.
func (c *Client) afterExport(ctx context.Context, res SaveResult) {
	rec := domain.ExportRecord{
		UserID:  res.UserID,
		PostID:  res.PostID,
		Path:    res.Path,
		Bytes:   res.Bytes,
		SavedAt: time.Now().UTC(),
	}

	if c.recorder != nil {
		if err := c.recorder.RecordExport(rec); err != nil {
			c.log.ErrorObj("export journal write failed", "error", err.Error())
		}
	}

	if c.events != nil {
		if _, err := c.events.Publish(ctx, publishers.NewExportEvent(rec, res.Comments)); err != nil {
			c.log.ErrorObj("export event publish failed", "error", err.Error())
		}
	}
}
