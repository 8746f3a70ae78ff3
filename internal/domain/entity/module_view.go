package entity

// ModuleEntry is one disassembled module of a published package.
type ModuleEntry struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// ModulesPage is one page of the paginated module viewer.
type ModulesPage struct {
	Title      string        `json:"title"`
	Modules    []ModuleEntry `json:"modules"`
	Stats      Stats         `json:"stats"`
	Pagination Pagination    `json:"pagination"`
}
