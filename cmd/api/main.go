package main

import (
	"fmt"
	"net/http"

	"github.com/cmlabs-hris/appraisal-engine-go/internal/config"
	appHTTP "github.com/cmlabs-hris/appraisal-engine-go/internal/handler/http"
	"github.com/cmlabs-hris/appraisal-engine-go/internal/pkg/database"
	"github.com/cmlabs-hris/appraisal-engine-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/appraisal-engine-go/internal/repository/postgresql"
	appraisalService "github.com/cmlabs-hris/appraisal-engine-go/internal/service/appraisal"
	calendarService "github.com/cmlabs-hris/appraisal-engine-go/internal/service/calendar"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	calendarRepo := postgresql.NewCalendarRepository(db)
	groupRepo := postgresql.NewGroupRepository(db)
	templateRepo := postgresql.NewTemplateRepository(db)
	cycleRepo := postgresql.NewCycleRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	periodCatalog := calendarService.NewPeriodCatalog(calendarRepo)
	appraisalSvc := appraisalService.NewAppraisalService(calendarRepo, groupRepo, templateRepo, cycleRepo)

	appraisalHandler := appHTTP.NewAppraisalHandler(appraisalSvc)
	calendarHandler := appHTTP.NewCalendarHandler(periodCatalog)
	groupHandler := appHTTP.NewGroupHandler(groupRepo)
	templateHandler := appHTTP.NewTemplateHandler(templateRepo)

	router := appHTTP.NewRouter(
		JWTService,
		appraisalHandler,
		calendarHandler,
		groupHandler,
		templateHandler,
		cfg.App.FrontendURL,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
