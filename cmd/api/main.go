package main

import (
	"fmt"
	"net/http"

	"github.com/wakt-hr/attendance-backend-go/internal/config"
	appHTTP "github.com/wakt-hr/attendance-backend-go/internal/handler/http"
	"github.com/wakt-hr/attendance-backend-go/internal/pkg/database"
	"github.com/wakt-hr/attendance-backend-go/internal/repository/postgresql"
	adjustmentService "github.com/wakt-hr/attendance-backend-go/internal/service/adjustment"
	attendanceService "github.com/wakt-hr/attendance-backend-go/internal/service/attendance"
	employeeService "github.com/wakt-hr/attendance-backend-go/internal/service/employee"
	fridayPolicyService "github.com/wakt-hr/attendance-backend-go/internal/service/fridaypolicy"
	punchService "github.com/wakt-hr/attendance-backend-go/internal/service/punch"
	ruleService "github.com/wakt-hr/attendance-backend-go/internal/service/rule"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn, database.PoolConfig{
		MaxConns: int32(cfg.Database.MaxConns),
		MinConns: int32(cfg.Database.MinConns),
	})
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	ruleRepo := postgresql.NewRuleRepository(db)
	adjustmentRepo := postgresql.NewAdjustmentRepository(db)
	punchRepo := postgresql.NewPunchRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	fridayPolicyRepo := postgresql.NewFridayPolicyRepository(db)

	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	ruleSvc := ruleService.NewRuleService(ruleRepo)
	adjustmentSvc := adjustmentService.NewAdjustmentService(adjustmentRepo)
	punchSvc := punchService.NewPunchService(punchRepo)
	attendanceSvc := attendanceService.NewAttendanceService(
		attendanceRepo,
		employeeRepo,
		ruleRepo,
		adjustmentRepo,
		punchRepo,
		attendanceService.Config{
			CollectionSector:  cfg.Attendance.CollectionSector,
			DefaultShiftStart: cfg.Attendance.DefaultShiftStart,
		},
	)
	fridayPolicySvc := fridayPolicyService.NewFridayPolicyService(
		fridayPolicyRepo,
		employeeRepo,
		attendanceRepo,
		adjustmentRepo,
	)

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	ruleHandler := appHTTP.NewRuleHandler(ruleSvc)
	adjustmentHandler := appHTTP.NewAdjustmentHandler(adjustmentSvc)
	punchHandler := appHTTP.NewPunchHandler(punchSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	fridayPolicyHandler := appHTTP.NewFridayPolicyHandler(fridayPolicySvc)

	router := appHTTP.NewRouter(
		cfg,
		employeeHandler,
		ruleHandler,
		adjustmentHandler,
		punchHandler,
		attendanceHandler,
		fridayPolicyHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
