package roster

// Column labels of the roster export. They come from the organisers'
// spreadsheet and are matched exactly after Unicode normalization.
const (
	ColumnGroupPosition       = "N°"
	ColumnGroupName           = "Nom groupe"
	ColumnGroupLocation       = "Modalité"
	ColumnGroupLink           = "Lien drive"
	ColumnFirstName           = "Prénom"
	ColumnLastName            = "NOM"
	ColumnDiscordName         = "Discord"
	ColumnProfile             = "Ecole ou profil"
	ColumnLevel               = "Niveau"
	ColumnPreferredTechniques = "Quelle méthode d'animation aimerais-tu utiliser au Karamove ?"
	ColumnKnownTechniques     = "Avec quelle(s) méthode(s) d'animation es-tu à l'aise ?"
)

// Columns lists every required column in export order.
var Columns = []string{
	ColumnGroupPosition,
	ColumnGroupName,
	ColumnGroupLocation,
	ColumnGroupLink,
	ColumnFirstName,
	ColumnLastName,
	ColumnDiscordName,
	ColumnProfile,
	ColumnLevel,
	ColumnPreferredTechniques,
	ColumnKnownTechniques,
}
