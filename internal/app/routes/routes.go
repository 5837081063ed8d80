package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jenidevops/studentdb/internal/app/controllers"
)

// SetupRouter configures all application routes. Static student paths are
// registered alongside the :id parameter; gin resolves the literal segment
// first, so /students/filter never reaches the ID handlers.
func SetupRouter(
	router *gin.Engine,
	metaController *controllers.MetaController,
	studentController *controllers.StudentController,
	libraryController *controllers.LibraryController,
) {
	router.GET("/", metaController.GetAPIMap)
	router.GET("/health", metaController.GetHealth)
	router.GET("/stats", metaController.GetStats)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	students := router.Group("/students")
	{
		students.POST("/single", studentController.InsertStudent)
		students.POST("/multiple", studentController.InsertStudents)
		students.POST("/sample-data", studentController.InsertSampleData)

		students.GET("", studentController.GetAllStudents)
		students.GET("/filter", studentController.FilterStudents)
		students.GET("/mern-stack", studentController.GetMernStackStudents)
		students.GET("/age-range", studentController.GetStudentsByAgeRange)
		students.GET("/courses", studentController.GetStudentsByCourses)
		students.GET("/complex", studentController.ComplexQuery)
		students.GET("/advanced-search", studentController.AdvancedSearch)

		students.PUT("/bulk", studentController.BulkUpdateStudents)
		students.PUT("/:id", studentController.UpdateStudent)
		students.PUT("/:id/complete", studentController.CompleteStudent)

		students.DELETE("/all", studentController.DeleteAllStudents)
		students.DELETE("/by-condition", studentController.DeleteStudentsByCondition)
		students.DELETE("/:id", studentController.DeleteStudent)
	}

	library := router.Group("/library")
	{
		library.GET("/books", libraryController.GetAllBooks)
		library.POST("/books", libraryController.AddBook)
		library.GET("/available", libraryController.GetAvailableBooks)
		library.GET("/category/:category", libraryController.GetBooksByCategory)
		library.POST("/sample-data", libraryController.InsertSampleData)

		library.POST("/borrow", libraryController.BorrowBook)
		library.POST("/return", libraryController.ReturnBook)
	}
}
