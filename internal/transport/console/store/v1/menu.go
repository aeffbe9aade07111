package store

const (
	OptionAddElectrical = 1
	OptionAddMechanical = 2
	OptionSearch        = 3
	OptionRemove        = 4
	OptionList          = 5
	OptionTotalValue    = 6
	OptionExit          = 7
)

const menuText = "\n--- Menú de Tienda de Repuestos de Autos ---\n" +
	"1. Agregar repuesto eléctrico\n" +
	"2. Agregar repuesto mecánico\n" +
	"3. Buscar repuesto\n" +
	"4. Eliminar repuesto\n" +
	"5. Listar repuestos\n" +
	"6. Calcular valor total del inventario\n" +
	"7. Salir\n" +
	"Selecciona una opción: "

const (
	promptName     = "Nombre del repuesto: "
	promptPrice    = "Precio del repuesto: "
	promptQuantity = "Cantidad en stock: "
	promptVoltage  = "Voltaje del repuesto: "
	promptWeight   = "Peso del repuesto (en kg): "
	promptSearch   = "Buscar repuesto por nombre: "
	promptRemove   = "Eliminar repuesto por nombre: "
)

const (
	msgAddElectrical = "Agregar un nuevo repuesto eléctrico:"
	msgAddMechanical = "Agregar un nuevo repuesto mecánico:"
	msgAdded         = "%s ha sido agregado al inventario.\n"
	msgRemoved       = "%s ha sido eliminado del inventario.\n"
	msgNotFound      = "No se encontró el repuesto con el nombre %s.\n"
	msgFound         = "Repuesto encontrado: %s\n"
	msgEmpty         = "El inventario está vacío."
	msgListHeader    = "Repuestos en el inventario:"
	msgTotal         = "El valor total del inventario es: $%.2f\n"
	msgExit          = "Saliendo de la aplicación..."
	msgInvalid       = "Opción inválida. Intenta de nuevo."
	msgError         = "Error: %s\n"
)

func actionName(option int) string {
	switch option {
	case OptionAddElectrical:
		return "add_electrical"
	case OptionAddMechanical:
		return "add_mechanical"
	case OptionSearch:
		return "search"
	case OptionRemove:
		return "remove"
	case OptionList:
		return "list"
	case OptionTotalValue:
		return "total_value"
	case OptionExit:
		return "exit"
	default:
		return "invalid"
	}
}
