package employees

import "github.com/ostech/hrconsole/pkg/types"

var EmployeesLink = types.NavigationItem{
	Name: "Employees",
	Href: "/employees",
}

var NavItems = []types.NavigationItem{
	EmployeesLink,
}
