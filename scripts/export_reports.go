// 手动导出筛选报告脚本
//
// 从 sqlite 数据库读取全部候选人报告并以 JSON 输出到标准输出，
// 供备份或导入其它系统使用。不经过 HTTP 服务，直接读库。
//
// 用法: go run scripts/export_reports.go > reports.json

package main

import (
	"encoding/json"
	"log"
	"os"

	"talentscout_backend/internal/config"
	"talentscout_backend/internal/model"
	"talentscout_backend/pkg/database"

	"gopkg.in/yaml.v3"
)

type exportedReport struct {
	ID            uint                    `json:"id"`
	CandidateName string                  `json:"candidateName"`
	Email         string                  `json:"email"`
	Role          string                  `json:"role"`
	SummaryText   string                  `json:"summaryText"`
	ReportText    string                  `json:"reportText"`
	Source        string                  `json:"source"`
	Transcript    []model.TranscriptEntry `json:"transcript"`
	CreatedAt     string                  `json:"createdAt"`
}

func main() {
	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("解析配置文件失败: %v", err)
	}

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}

	var reports []model.Report
	if err := db.Order("created_at ASC, id ASC").Find(&reports).Error; err != nil {
		log.Fatalf("读取报告失败: %v", err)
	}

	out := make([]exportedReport, 0, len(reports))
	for _, r := range reports {
		transcript, err := r.Transcript()
		if err != nil {
			log.Fatalf("报告 %d 的问答记录损坏: %v", r.ID, err)
		}
		out = append(out, exportedReport{
			ID:            r.ID,
			CandidateName: r.CandidateName,
			Email:         r.Email,
			Role:          r.Role,
			SummaryText:   r.SummaryText,
			ReportText:    r.ReportText,
			Source:        r.Source,
			Transcript:    transcript,
			CreatedAt:     r.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatalf("输出失败: %v", err)
	}

	log.Printf("共导出 %d 份报告", len(out))
}
