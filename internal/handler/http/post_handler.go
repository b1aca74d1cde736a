package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/ClubConnect/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/ClubConnect/internal/usecase/contract"
)

// PostHandler serves the feed: posts, likes and comments.
type PostHandler struct {
	postUC usecasecontract.IPostUseCase
}

func NewPostHandler(postUC usecasecontract.IPostUseCase) *PostHandler {
	return &PostHandler{postUC: postUC}
}

func (h *PostHandler) CreatePost(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var req dto.CreatePostRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	post, err := h.postUC.CreatePost(c.Request.Context(), userID, req.Content, req.Tag, req.ImageURL)
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, post)
}

// ListPosts supports ?page=, ?page_size= and ?hashtag=.
func (h *PostHandler) ListPosts(c *gin.Context) {
	posts, meta, err := h.postUC.ListPosts(
		c.Request.Context(),
		queryInt(c, "page", 1),
		queryInt(c, "page_size", 10),
		c.Query("hashtag"),
	)
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.PaginatedPostResponse{Posts: posts, Pagination: meta})
}

func (h *PostHandler) GetPost(c *gin.Context) {
	post, err := h.postUC.GetPost(c.Request.Context(), c.Param("postID"))
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, post)
}

func (h *PostHandler) DeletePost(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	if err := h.postUC.DeletePost(c.Request.Context(), userID, c.Param("postID")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PostHandler) ToggleLike(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	res, err := h.postUC.ToggleLike(c.Request.Context(), userID, c.Param("postID"))
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, res)
}

func (h *PostHandler) AddComment(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var req dto.CreateCommentRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	comment, err := h.postUC.AddComment(c.Request.Context(), userID, c.Param("postID"), req.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, comment)
}

func (h *PostHandler) ListComments(c *gin.Context) {
	comments, err := h.postUC.ListComments(c.Request.Context(), c.Param("postID"))
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, comments)
}

func (h *PostHandler) DeleteComment(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	if err := h.postUC.DeleteComment(c.Request.Context(), userID, c.Param("postID"), c.Param("commentID")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
