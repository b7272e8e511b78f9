package validation

// Rule lists for the pizza routes.

var CreatePizza = []Rule{
	BodyField("name", Exists(), IsString()),
	BodyField("image", Exists(), IsString()),
	BodyField("price", Exists(), IsNumeric()),
}

var GetPizzaByID = []Rule{
	ParamField("id", Exists(), IsObjectID()),
}

var UpdatePizza = []Rule{
	ParamField("id", Exists(), IsObjectID()),
	BodyField("name", Exists(), IsString()),
	BodyField("image", Exists(), IsString()),
	BodyField("price", Exists(), IsNumeric()),
}

var DeletePizza = []Rule{
	ParamField("id", Exists(), IsObjectID()),
}
