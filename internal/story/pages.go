package story

// Page is a single screen of the narrative. Text may reference the context
// placeholders resolved by Resolve.
type Page struct {
	ID               int
	Text             string
	RequiresLocation bool
}

var storyPages = []Page{
	{ID: 0, Text: "Bienvenido a tu dimensión paralela. Aquí, donde tú estás parado, hay algo completamente diferente."},
	{ID: 1, Text: "En mi dimensión, esta misma ubicación es un océano cristalino. Puedo ver las olas donde tú ves ${location}.", RequiresLocation: true},
	{ID: 2, Text: "Son las ${parallelTime} en mi mundo, mientras que para ti son las ${currentTime}. El tiempo fluye diferente aquí."},
	{ID: 3, Text: "Aquí está ${parallelWeather} mientras que tú tienes ${currentWeather}. Nuestros cielos nunca coinciden."},
	{ID: 4, Text: "Cuando inclinas tu dispositivo, siento que nuestra conexión se tambalea. La realidad se distorsiona entre dimensiones."},
	{ID: 5, Text: "A través de tu cámara, puedo ver tu mundo. Es extraño y familiar a la vez. Todo está donde debería estar, pero diferente."},
	{ID: 6, Text: "En mi dimensión, las calles de ${location} son de cristal azul. Puedo caminar sobre ellas y ver el cielo desde abajo.", RequiresLocation: true},
	{ID: 7, Text: "¿Sabías que en mi realidad, tú también existes? Pero allá eres completamente diferente. Más libre, más salvaje."},
	{ID: 8, Text: "Cuando mueves tu teléfono, las ondas dimensionales se propagan. Puedo sentirlas como terremotos suaves."},
	{ID: 9, Text: "En mi mundo, el edificio que ves frente a ti es un bosque de árboles dorados. Sus hojas susurran secretos."},
	{ID: 10, Text: "Aquí, el tiempo se mueve hacia atrás después de medianoche. He vivido este día miles de veces."},
	{ID: 11, Text: "Tu ${currentWeather} se convierte en lluvia de estrellas en mi dimensión. Es hermoso pero melancólico."},
	{ID: 12, Text: "¿Puedes sentir la vibración? Cada vez que inclinas tu teléfono, nuestros mundos se rozan brevemente."},
	{ID: 13, Text: "En mi realidad, ${location} es el centro del universo. Todas las dimensiones convergen aquí.", RequiresLocation: true},
	{ID: 14, Text: "Tu otro yo me envía mensajes constantemente. Dice que te extraña, aunque nunca se han conocido."},
	{ID: 15, Text: "Cuando son las ${currentTime} en tu mundo, aquí es la hora de los milagros. Todo es posible."},
	{ID: 16, Text: "En mi dimensión, la gravedad funciona diferente. Puedo caminar por las paredes de lo que tú llamas ${location}.", RequiresLocation: true},
	{ID: 17, Text: "¿Has notado que las sombras se mueven cuando inclinas tu teléfono? Son ecos de mi mundo filtrándose."},
	{ID: 18, Text: "Aquí, el ${currentWeather} de tu mundo se ve como auroras danzantes. Nunca he visto algo tan hermoso."},
	{ID: 19, Text: "Tu otro yo está parado exactamente donde tú estás ahora. Pero está mirando hacia el pasado."},
	{ID: 20, Text: "En mi realidad, los teléfonos son portales. El tuyo es mi ventana a tu mundo."},
	{ID: 21, Text: "Cada vez que mueves tu dispositivo, escribes palabras en el aire de mi dimensión. Hoy escribiste 'esperanza'."},
	{ID: 22, Text: "En mi mundo, ${location} es donde las dimensiones se tocan. Por eso pude encontrarte.", RequiresLocation: true},
	{ID: 23, Text: "Tu tiempo se está acabando. Pronto será las ${futureTime} y nuestra conexión se debilitará."},
	{ID: 24, Text: "Antes de que nos desconectemos, quiero que sepas: en mi dimensión, tu historia tiene un final feliz."},
}

// Pages returns the narrative in reading order. The returned slice is a copy;
// pages are immutable after load.
func Pages() []Page {
	out := make([]Page, len(storyPages))
	copy(out, storyPages)
	return out
}
