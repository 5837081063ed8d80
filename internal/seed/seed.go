// Package seed holds the canned datasets behind the sample-data endpoints.
package seed

import (
	"github.com/jenidevops/studentdb/internal/app/models"
)

func strPtr(s string) *string { return &s }

// SampleStudents returns a fresh copy of the demo student dataset.
func SampleStudents() []*models.Student {
	return []*models.Student{
		{Name: "John Doe", Age: 22, Course: "MERN Stack", Email: strPtr("john@email.com"), Phone: strPtr("123-456-7890")},
		{Name: "Jane Smith", Age: 24, Course: "Python Development", Email: strPtr("jane@email.com"), Phone: strPtr("123-456-7891")},
		{Name: "Mike Johnson", Age: 23, Course: "MERN Stack", Email: strPtr("mike@email.com"), Phone: strPtr("123-456-7892")},
		{Name: "Sarah Wilson", Age: 25, Course: "Data Science", Email: strPtr("sarah@email.com"), Phone: strPtr("123-456-7893")},
		{Name: "Alex Brown", Age: 21, Course: "MERN Stack", Status: models.StatusCompleted, Email: strPtr("alex@email.com"), Phone: strPtr("123-456-7894")},
	}
}

// SampleBooks returns a fresh copy of the demo library dataset.
func SampleBooks() []*models.Book {
	return []*models.Book{
		{Title: "JavaScript: The Good Parts", Author: "Douglas Crockford", ISBN: strPtr("978-0596517748"), Category: strPtr("Programming")},
		{Title: "Clean Code", Author: "Robert C. Martin", ISBN: strPtr("978-0132350884"), Category: strPtr("Programming")},
		{Title: "The Pragmatic Programmer", Author: "David Thomas, Andrew Hunt", ISBN: strPtr("978-0201616224"), Category: strPtr("Programming")},
		{Title: "Python Crash Course", Author: "Eric Matthes", ISBN: strPtr("978-1593276034"), Category: strPtr("Programming")},
		{Title: "Data Science from Scratch", Author: "Joel Grus", ISBN: strPtr("978-1492041139"), Category: strPtr("Data Science")},
	}
}
