package core

// Employee 為儀表板核心實體。載入後視為不可變快照，任何變更
// 都以整筆替換的方式進行（見 store 套件）。
type Employee struct {
	ID        int     `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Age       int     `json:"age"`
	Phone     string  `json:"phone"`
	Address   Address `json:"address"`
	Company   Company `json:"company"`
	Image     string  `json:"image"`
	// Rating 固定落在 [1.0, 5.0]，只有晉升操作會改動（並在該處 clamp）
	Rating             float64             `json:"rating"`
	Projects           []string            `json:"projects"`
	Feedback           []Feedback          `json:"feedback"`
	PerformanceHistory []PerformanceRecord `json:"performanceHistory"`
}

// Address 對應來源 API 的巢狀欄位（street 在來源叫 address）
type Address struct {
	Street     string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
}

// Company department 同時是篩選與統計的分組鍵
type Company struct {
	Department string `json:"department"`
	Name       string `json:"name"`
	Title      string `json:"title"`
}

type Feedback struct {
	ID      string `json:"id"`
	Author  string `json:"author"`
	Comment string `json:"comment"`
	// Date 為 ISO 日曆日期（YYYY-MM-DD）
	Date   string `json:"date"`
	Rating int    `json:"rating"`
}

// PerformanceRecord 每位員工固定六筆（Jan–Jun，依月份排序）
type PerformanceRecord struct {
	Month     string  `json:"month"`
	Rating    float64 `json:"rating"`
	Goals     int     `json:"goals"`
	Completed int     `json:"completed"`
}

// FullName 顯示用
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
