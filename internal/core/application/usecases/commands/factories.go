package commands

// Function adapters, so a single unit of work implementation can serve every
// handler:
//
//	var f commands.UoWFactory = commands.FuncUoWFactory(func() commands.UoW {
//	    return gormFactory.Create()
//	})
type (
	FuncUoWFactory         func() UoW
	FuncRegistryUoWFactory func() RegistryUoW
	FuncCatalogUoWFactory  func() CatalogUoW
	FuncOutboxUoWFactory   func() OutboxUoW
)

func (f FuncUoWFactory) Create() UoW {
	return f()
}

func (f FuncRegistryUoWFactory) Create() RegistryUoW {
	return f()
}

func (f FuncCatalogUoWFactory) Create() CatalogUoW {
	return f()
}

func (f FuncOutboxUoWFactory) Create() OutboxUoW {
	return f()
}
