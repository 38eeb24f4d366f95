package controller

import (
	"errors"
	"mime/multipart"

	"talentscout_backend/internal/service"
	"talentscout_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ScreeningController struct {
	ScreeningService *service.ScreeningService
}

func NewScreeningController(screeningService *service.ScreeningService) *ScreeningController {
	return &ScreeningController{ScreeningService: screeningService}
}

// StartScreeningRequest is the multipart form for starting a screening.
// Either the resume file or cv_text must carry the CV.
type StartScreeningRequest struct {
	Name   string                `form:"name" binding:"required"`
	Email  string                `form:"email" binding:"required,email"`
	Role   string                `form:"role" binding:"required"`
	CVText string                `form:"cv_text"`
	Resume *multipart.FileHeader `form:"resume"`
}

// Start godoc
// @Summary 开始候选人筛选
// @Description 提交简历与目标岗位，生成画像摘要与面试问题
// @Tags 筛选
// @Accept  mpfd
// @Produce  json
// @Param   name formData string true "候选人姓名"
// @Param   email formData string true "候选人邮箱"
// @Param   role formData string true "目标岗位"
// @Param   cv_text formData string false "粘贴的简历文本"
// @Param   resume formData file false "简历PDF"
// @Success 201 {object} util.Response{data=service.QuestionView} "创建成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/screenings [post]
func (c *ScreeningController) Start(ctx *gin.Context) {
	var req StartScreeningRequest
	if err := ctx.ShouldBind(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	startReq := service.StartScreeningRequest{
		CandidateName: req.Name,
		Email:         req.Email,
		Role:          req.Role,
		CVText:        req.CVText,
	}

	if req.Resume != nil {
		file, err := req.Resume.Open()
		if err != nil {
			util.BadRequest(ctx, "could not read uploaded resume")
			return
		}
		defer file.Close()
		startReq.Filename = req.Resume.Filename
		startReq.File = file
	}

	view, err := c.ScreeningService.Start(ctx.Request.Context(), startReq)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, view)
}

// Get godoc
// @Summary 查询筛选进度
// @Description 返回当前问题、进度与已回答历史
// @Tags 筛选
// @Produce  json
// @Param   id path string true "会话ID"
// @Success 200 {object} util.Response{data=service.QuestionView} "成功"
// @Failure 404 {object} util.Response "会话不存在"
// @Router /api/screenings/{id} [get]
func (c *ScreeningController) Get(ctx *gin.Context) {
	view, err := c.ScreeningService.Get(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrSessionNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, view)
}

type SubmitAnswerRequest struct {
	Answer string `json:"answer" binding:"required"`
}

// SubmitAnswer godoc
// @Summary 提交当前问题的回答
// @Description 记录回答并前进；最后一题回答后生成并保存报告
// @Tags 筛选
// @Accept  json
// @Produce  json
// @Param   id path string true "会话ID"
// @Param   body body SubmitAnswerRequest true "回答内容"
// @Success 200 {object} util.Response{data=service.QuestionView} "成功"
// @Failure 400 {object} util.Response "回答为空"
// @Failure 404 {object} util.Response "会话不存在"
// @Failure 409 {object} util.Response "会话已完成"
// @Router /api/screenings/{id}/answers [post]
func (c *ScreeningController) SubmitAnswer(ctx *gin.Context) {
	var req SubmitAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	view, err := c.ScreeningService.SubmitAnswer(ctx.Request.Context(), ctx.Param("id"), req.Answer)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrSessionNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrSessionCompleted):
			util.Conflict(ctx, err.Error())
		case errors.Is(err, util.ErrEmptyAnswer):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, view)
}
