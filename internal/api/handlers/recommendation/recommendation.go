package recommendation

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"drink-recommender/internal/core/recommend"
	"drink-recommender/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler 推薦相關路由的處理器
type Handler struct {
	service *recommend.Service
}

// NewHandler 創建推薦處理器
func NewHandler(service *recommend.Service) *Handler {
	return &Handler{service: service}
}

// CreateRequest 建立推薦的請求格式
type CreateRequest struct {
	Image    string   `json:"image,omitempty"`    // 食物照片（base64 或 URL）
	Keywords []string `json:"keywords,omitempty"` // 直接指定食物關鍵字時可省略照片
	Occasion string   `json:"occasion,omitempty"` // 場合（date、party、gathering、solo、business、all）
	Tastes   []string `json:"tastes,omitempty"`   // 口味偏好
}

// HandleCreate 建立一次酒款推薦
func (h *Handler) HandleCreate(c *gin.Context) {
	requestID := c.GetHeader("X-Request-ID")

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogWarn("無效的推薦請求格式",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if req.Image == "" && len(req.Keywords) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image or keywords required"})
		return
	}
	if req.Image != "" && !validImageRef(req.Image) {
		respondError(c, common.ErrInvalidImageFormat, "Invalid image")
		return
	}

	userID := currentUserID(c)
	common.LogInfo("收到推薦請求",
		zap.String("user_id", userID),
		zap.String("occasion", req.Occasion),
		zap.Strings("tastes", req.Tastes),
		zap.Bool("has_image", req.Image != ""),
		zap.String("request_id", requestID),
	)

	result, err := h.service.CreateRecommendation(c.Request.Context(), &recommend.Request{
		UserID:   userID,
		Occasion: strings.ToLower(strings.TrimSpace(req.Occasion)),
		Tastes:   req.Tastes,
		ImageRef: req.Image,
		Keywords: req.Keywords,
	})
	if err != nil {
		respondError(c, err, "Recommendation failed")
		return
	}

	c.JSON(http.StatusOK, result)
}

// HandleList 查詢用戶的推薦歷史
func (h *Handler) HandleList(c *gin.Context) {
	userID := currentUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	page, err := h.service.GetHistory(c.Request.Context(), userID, limit, offset)
	if err != nil {
		respondError(c, err, "Failed to load history")
		return
	}

	c.JSON(http.StatusOK, page)
}

// HandleGet 查詢單筆推薦紀錄。匿名也能查（分享連結場景），
// 帶了身份就做擁有權檢查。
func (h *Handler) HandleGet(c *gin.Context) {
	rec, err := h.service.GetDetail(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to load recommendation")
		return
	}

	c.JSON(http.StatusOK, rec)
}

// validImageRef 檢查圖片參照是 URL、data URI 或合法 base64
func validImageRef(ref string) bool {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") || strings.HasPrefix(ref, "data:image/") {
		return true
	}
	// 只驗證開頭片段，避免整段解碼大圖
	head := ref
	if len(head) > 64 {
		head = head[:64]
	}
	_, err := base64.StdEncoding.DecodeString(head[:len(head)-len(head)%4])
	return err == nil
}

// currentUserID 從請求頭取得用戶身份，空字串代表匿名。
// 身份驗證由上游閘道處理，這裡只信任轉發進來的標頭。
func currentUserID(c *gin.Context) string {
	return strings.TrimSpace(c.GetHeader("X-User-ID"))
}

// respondError 依錯誤類型回覆對應狀態碼
func respondError(c *gin.Context, err error, fallback string) {
	var customErr *common.CustomError
	if errors.As(err, &customErr) {
		c.JSON(customErr.Status, gin.H{
			"error": customErr.Message,
			"code":  customErr.Code,
		})
		return
	}
	common.LogError(fallback,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
	)
	c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
}
