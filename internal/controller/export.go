package controller

import (
	"study_boost_backend/internal/service"
	"study_boost_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// sendExport 默认以附件下载；?store=true 时保存到对象存储并返回地址
func sendExport(ctx *gin.Context, storage *service.StorageService, filename, contentType string, data []byte) {
	if ctx.Query("store") != "true" || storage == nil {
		util.Attachment(ctx, filename, contentType, data)
		return
	}

	url, err := storage.Publish(ctx.Request.Context(), currentUserID(ctx), filename, contentType, data)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"filename": filename, "url": url})
}
