package validation

// Rule lists for the order routes. Declaration order matters: the first
// failing rule is the one reported.

var CreateOrder = []Rule{
	BodyField("customer.name", NotEmpty(), IsString()),
	BodyField("customer.address", NotEmpty(), IsString()),
	BodyField("pizzas", Exists(), IsObjectIDArray()),
}

var GetOrderByID = []Rule{
	ParamField("id", Exists(), IsObjectID()),
}

var UpdateOrder = []Rule{
	ParamField("id", Exists(), IsObjectID()),
	BodyField("customer.name", NotEmpty(), IsString()),
	BodyField("customer.address", NotEmpty(), IsString()),
	BodyField("pizzas", Exists(), IsObjectIDArray()),
}

var UpdateOrderedPizzaStatus = []Rule{
	ParamField("id", Exists(), IsObjectID()),
	BodyField("index", Exists(), IsNumeric()),
	BodyField("status", Exists(), IsPizzaStatus()),
}

var DeleteOrder = []Rule{
	ParamField("id", Exists(), IsObjectID()),
}
