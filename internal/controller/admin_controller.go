package controller

import (
	"errors"
	"strconv"

	"talentscout_backend/internal/service"
	"talentscout_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	AuthService   *service.AuthService
	ReportService *service.ReportService
}

func NewAdminController(authService *service.AuthService, reportService *service.ReportService) *AdminController {
	return &AdminController{
		AuthService:   authService,
		ReportService: reportService,
	}
}

// swagger:model LoginRequest
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary 管理员登录
// @Description 验证管理员身份并返回JWT令牌
// @Tags 管理
// @Accept  json
// @Produce  json
// @Param   body body LoginRequest true "登录凭据"
// @Success 200 {object} util.Response{data=object} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 401 {object} util.Response "凭据无效"
// @Router /api/admin/login [post]
func (c *AdminController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, err := c.AuthService.Login(req.Username, req.Password)
	if err != nil {
		// Same rejection for unknown user and wrong password.
		util.Unauthorized(ctx)
		return
	}

	util.Success(ctx, gin.H{"token": token})
}

// ListReports godoc
// @Summary 报告列表
// @Description 按创建时间倒序返回已保存的筛选报告
// @Tags 管理
// @Produce  json
// @Security ApiKeyAuth
// @Param   limit query int false "返回条数上限" default(100)
// @Success 200 {object} util.Response{data=[]repository.ReportSummary} "成功"
// @Failure 401 {object} util.Response "未授权"
// @Router /api/admin/reports [get]
func (c *AdminController) ListReports(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "100"))

	reports, err := c.ReportService.List(limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, reports)
}

// GetReport godoc
// @Summary 报告详情
// @Description 返回完整报告与问答转录
// @Tags 管理
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "报告ID"
// @Success 200 {object} util.Response{data=service.ReportDetail} "成功"
// @Failure 401 {object} util.Response "未授权"
// @Failure 404 {object} util.Response "报告不存在"
// @Router /api/admin/reports/{id} [get]
func (c *AdminController) GetReport(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid report id")
		return
	}

	detail, err := c.ReportService.Detail(uint(id))
	if err != nil {
		if errors.Is(err, util.ErrReportNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, detail)
}
